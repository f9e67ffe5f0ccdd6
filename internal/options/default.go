package options

import (
	"fmt"
	"time"
)

const hospitalMenuURL = "https://www.radboudumc.nl/patientenzorg/voorzieningen/eten-en-drinken/menu-van-de-dag/"

// Default is the built-in option table. The hospital menu link depends on the day.
func Default(day time.Time) Table {
	hospitalMenu := hospitalMenuURL + MenuSlug(day) + "/"

	return Table{
		Food: []Option{
			{
				Label:       "ramen",
				Description: "Chinese",
				Instructions: "Everybody that wants to join for dinner, adds a :bee: response to this message.\n" +
					"Don't forget to order plain rice for Simone (if she joins us)\n" +
					"Order from here: http://www.lotusnijmegen.nl/pages/acties.php",
				Payment: PaymentBike,
				Emoji:   "🍜",
			},
			{
				Label:       "fries",
				Description: "Snackbar",
				Instructions: "The person who pays chooses a snackbar to order from.\n" +
					"Everybody that wants to join for dinner, adds a :bee: response to this message.",
				Payment: PaymentDelivery,
				Emoji:   "🍟",
			},
			{
				Label:       "pizza",
				Description: "Pizza",
				Instructions: "Check the menu at: https://www.pizzeriarotana.nl\n" +
					"Destination: 6525EC Toernooiveld 212, order at ~17:30",
				Payment: PaymentDelivery,
				Emoji:   "🍕",
			},
			{
				Label:       "dragon_face",
				Description: "Wok",
				Instructions: "Check the menu at: https://nijmegen.iwokandgo.nl\n" +
					"Don't forget to ask for chopsticks!\n" +
					"Destination: 6525EC Toernooiveld 212, order at ~17:30",
				Payment: PaymentDelivery,
				Emoji:   "🐲",
			},
			{
				Label:       "knife_fork_plate",
				Description: "<https://www.ru.nl/facilitairbedrijf/horeca/refter/menu-soep-week/|at the Refter>",
				Instructions: "Everyone pays for themselves at the Refter restaurant, " +
					"and there are multiple meals to choose there.\n" +
					"Check for the daily menu: https://www.ru.nl/facilitairbedrijf/horeca/refter/menu-soep-week/",
				Payment: PaymentEatingOut,
				Emoji:   "🍽️",
			},
			{
				Label:       "hospital",
				Description: fmt.Sprintf("<%s|at the Hospital>", hospitalMenu),
				Instructions: "Everyone pays for themselves at the hospital restaurant, " +
					"and there are multiple meals to choose there.\n" +
					"Check for the daily menu: " + hospitalMenu,
				Payment: PaymentEatingOut,
				Emoji:   "🏥",
			},
		},
		Home: []Option{
			{Label: "house", Description: "I'm eating at home", Emoji: "🏠"},
			{Label: "x", Description: "I'm not going today", Emoji: "❌"},
		},
		Abort: Option{Label: "bomb", Description: "Cancel today's poll", Emoji: "💣"},
	}
}

var (
	dutchWeekdays = [...]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"}
	dutchMonths   = [...]string{"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"}
)

// MenuSlug formats day as the hospital menu path segment, e.g. "vrijdag-18-oktober".
func MenuSlug(day time.Time) string {
	return fmt.Sprintf("%s-%d-%s", dutchWeekdays[day.Weekday()], day.Day(), dutchMonths[day.Month()-1])
}
