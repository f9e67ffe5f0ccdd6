package workflow

import (
	"strings"
	"testing"

	"meal_poll_bot/internal/options"

	"github.com/stretchr/testify/assert"
)

func TestPollMessage(t *testing.T) {
	message := pollMessage(table)
	lines := strings.Split(message, "\n")

	assert.Equal(t, "<!everyone> What do you want to eat today?", lines[0])
	assert.Equal(t, "Chinese: :ramen:", lines[1])
	assert.Equal(t, "I'm not going today: :x:", lines[len(lines)-1])
	assert.Len(t, lines, len(table.All())+1)
	assert.NotContains(t, message, ":bomb:")
}

func TestAnnouncementMessage(t *testing.T) {
	option := options.Option{Description: "Pizza", Instructions: "Order at ~17:30"}

	option.Payment = options.PaymentBike
	assert.Equal(t,
		"<!everyone> We're eating Pizza! Order at ~17:30\nAlice has the honour to :bike: today",
		announcementMessage(option, "Alice", false),
	)

	option.Payment = options.PaymentDelivery
	assert.Equal(t,
		"<!everyone> Reminder: We're eating Pizza! Order at ~17:30\nAlice has the honour to pay for this :money_with_wings:",
		announcementMessage(option, "Alice", true),
	)

	option.Payment = options.PaymentEatingOut
	assert.Equal(t,
		"<!everyone> We're eating Pizza! Order at ~17:30",
		announcementMessage(option, "Alice", false),
	)
}

func TestFallbackMessage(t *testing.T) {
	assert.Equal(t,
		"Oh no something went wrong. Back to the manual method, <!channel> handle this!",
		fallbackMessage("<!channel>"),
	)
}
