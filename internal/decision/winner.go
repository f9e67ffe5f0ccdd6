package decision

// SelectWinner returns decided when a decision already exists. Otherwise it
// picks one of the options with the most votes.
func SelectWinner(votes []Vote, decided string, chooser Chooser) (string, error) {
	if decided != "" {
		return decided, nil
	}

	if len(votes) == 0 {
		return "", ErrNoQuorum
	}

	highest := votes[0].Count
	for _, vote := range votes[1:] {
		if vote.Count > highest {
			highest = vote.Count
		}
	}

	var tied []string
	for _, vote := range votes {
		if vote.Count == highest {
			tied = append(tied, vote.Label)
		}
	}

	return tied[chooser.IntN(len(tied))], nil
}
