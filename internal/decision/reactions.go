package decision

import (
	"sort"

	"meal_poll_bot/internal/chat"
	"meal_poll_bot/internal/options"
)

type VoterSet map[string]struct{}

func (s VoterSet) Add(ids ...string) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

func (s VoterSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s VoterSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type Vote struct {
	Label string
	Count int
}

type Tally struct {
	Voters VoterSet
	Votes  []Vote
}

// HasAbort reports whether somebody reacted with the abort marker.
func HasAbort(reactions []chat.Reaction, table options.Table) bool {
	for _, reaction := range reactions {
		if table.IsAbort(reaction.Label) {
			return true
		}
	}
	return false
}

// Aggregate collects everybody who reacted with a food option and the food
// options that got at least one vote besides the bot's own seed reaction.
func Aggregate(reactions []chat.Reaction, table options.Table) Tally {
	tally := Tally{Voters: VoterSet{}}

	for _, reaction := range reactions {
		if !table.IsFood(reaction.Label) {
			continue
		}

		tally.Voters.Add(reaction.UserIDs...)

		// a count of 1 is the seed reaction
		if reaction.Count > 1 {
			tally.Votes = append(tally.Votes, Vote{Label: reaction.Label, Count: reaction.Count})
		}
	}

	return tally
}

// Attendees collects everybody who reacted to a follow-up message, ignoring
// the home options and the abort marker.
func Attendees(reactions []chat.Reaction, table options.Table) VoterSet {
	attendees := VoterSet{}

	for _, reaction := range reactions {
		if table.IsHome(reaction.Label) || table.IsAbort(reaction.Label) {
			continue
		}
		attendees.Add(reaction.UserIDs...)
	}

	return attendees
}
