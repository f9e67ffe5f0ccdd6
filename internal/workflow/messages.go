package workflow

import (
	"fmt"
	"strings"

	"meal_poll_bot/internal/options"
)

const (
	everyone      = "<!everyone>"
	apologyText   = "No technicie this week? :("
	reminderLabel = "Reminder: "
)

func pollMessage(table options.Table) string {
	lines := []string{everyone + " What do you want to eat today?"}
	for _, option := range table.All() {
		lines = append(lines, fmt.Sprintf("%s: :%s:", option.Description, option.Label))
	}
	return strings.Join(lines, "\n")
}

func announcementMessage(option options.Option, payer string, reminder bool) string {
	prefix := ""
	if reminder {
		prefix = reminderLabel
	}

	message := fmt.Sprintf("%s %sWe're eating %s! %s", everyone, prefix, option.Description, option.Instructions)

	switch option.Payment {
	case options.PaymentBike:
		message += fmt.Sprintf("\n%s has the honour to :bike: today", payer)
	case options.PaymentDelivery:
		message += fmt.Sprintf("\n%s has the honour to pay for this :money_with_wings:", payer)
	}

	return message
}

func fallbackMessage(operator string) string {
	return fmt.Sprintf("Oh no something went wrong. Back to the manual method, %s handle this!", operator)
}
