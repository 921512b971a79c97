package flow

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/reach-sg/reach-bot/internal/model"
)

// Milestones derives exactly four checkpoint strings from the goal type,
// target amount and horizon. Savings goals get weekly save targets at
// 25/50/75/100%; remittance goals get family-oriented checkpoints;
// education and health get research/save/check/finish; anything else gets
// plain percentage checkpoints.
func Milestones(goalType string, amount decimal.Decimal, months float64) []string {
	quarter := amount.Div(decimal.NewFromInt(4))
	half := amount.Div(decimal.NewFromInt(2))

	switch goalType {
	case model.GoalSavings:
		weekly := amount.Div(decimal.NewFromFloat(months * 4))
		return []string{
			fmt.Sprintf("🥇 Week 1: Save %s from your pay - 25%% complete!", weekly.StringFixed(0)),
			fmt.Sprintf("🥈 Week 2: Save another %s - 50%% complete!", weekly.StringFixed(0)),
			fmt.Sprintf("🥉 Week 3: Save another %s - 75%% complete!", weekly.StringFixed(0)),
			fmt.Sprintf("🏆 Week 4: Final %s - Goal reached! Celebrate with family!", weekly.StringFixed(0)),
		}
	case model.GoalRemittance:
		return []string{
			fmt.Sprintf("🏠 Talk with family about how they'll use the %s", amount.StringFixed(0)),
			fmt.Sprintf("💵 Save half (%s) by halfway to deadline", half.StringFixed(0)),
			"📱 Share a progress update with family",
			"🎁 Send the full amount and celebrate with a video call",
		}
	case model.GoalEducation:
		return []string{
			"📚 Research the exact cost (books, fees, materials)",
			fmt.Sprintf("💰 Save the first 25%% (%s)", quarter.StringFixed(0)),
			"📝 Plan with family how the education will help",
			"🎓 Reach the full amount and celebrate",
		}
	case model.GoalHealth:
		return []string{
			"🩺 List the exact health needs",
			fmt.Sprintf("💊 Save the first 25%% (%s)", quarter.StringFixed(0)),
			"💪 Check progress and adjust if needed",
			"❤️ Reach the goal and support your family's health",
		}
	default:
		return []string{
			fmt.Sprintf("🚀 Start: save the first %s", quarter.StringFixed(0)),
			fmt.Sprintf("🔄 25%% done: %s saved", quarter.StringFixed(0)),
			fmt.Sprintf("📈 Halfway there: %s saved", half.StringFixed(0)),
			fmt.Sprintf("🏁 Finish line: full %s saved!", amount.StringFixed(0)),
		}
	}
}
