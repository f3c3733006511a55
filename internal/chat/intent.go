// Package chat routes assistant messages: deterministic intents are answered
// locally, everything else goes to the language model.
package chat

import "regexp"

// Intent labels a recognised user request.
type Intent string

const (
	IntentAddressUpdate Intent = "address_update"
	IntentPromotion     Intent = "promotion"
	IntentLeaveBalance  Intent = "leave_balance"
	IntentPolicy        Intent = "policy"
	IntentGeneral       Intent = "general"
)

// intentRules are checked in order; the first match wins. Address updates and
// promotion requests take precedence over the broader policy patterns so that
// "promotion policy" still opens the promotion flow.
var intentRules = []struct {
	intent  Intent
	pattern *regexp.Regexp
}{
	{IntentAddressUpdate, regexp.MustCompile(`(?i)update my address`)},
	{IntentPromotion, regexp.MustCompile(`(?i)promotion|promoted|promotion criteria`)},
	{IntentLeaveBalance, regexp.MustCompile(`(?i)how many days of leave|leave balance|days of leave`)},
	{IntentPolicy, regexp.MustCompile(`(?i)policy|coworking|expense|remote work`)},
}

// Classify returns the intent of a user message, IntentGeneral when no rule
// matches.
func Classify(text string) Intent {
	for _, rule := range intentRules {
		if rule.pattern.MatchString(text) {
			return rule.intent
		}
	}
	return IntentGeneral
}

// PromotionChecklist is the static review checklist shown for promotion
// intents.
var PromotionChecklist = []string{
	"Consistent performance at current level (2+ quarters)",
	"Impactful project delivery with measurable outcomes",
	"Demonstrated leadership or mentorship",
	"Role scope aligned with next level expectations",
}
