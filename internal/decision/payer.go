package decision

import "go.uber.org/zap"

type LedgerMember struct {
	ID      string
	Name    string
	Balance int64
}

type IdentityResolver interface {
	ResolveChatID(ledgerMemberID string) (string, bool)
}

// IdentityMap resolves ledger member ids from an in-memory map.
type IdentityMap map[string]string

func (m IdentityMap) ResolveChatID(ledgerMemberID string) (string, bool) {
	chatID, ok := m[ledgerMemberID]
	return chatID, ok
}

// SelectPayer picks the voter with the lowest ledger balance. Members
// without a chat identity are skipped.
func SelectPayer(
	voters VoterSet,
	members []LedgerMember,
	resolver IdentityResolver,
	chooser Chooser,
	logger *zap.SugaredLogger,
) (LedgerMember, error) {
	var eligible []LedgerMember

	for _, member := range members {
		chatID, ok := resolver.ResolveChatID(member.ID)
		if !ok {
			logger.Warnw("ledger member has no chat identity", "name", member.Name, "ledger_id", member.ID)
			continue
		}

		if voters.Has(chatID) {
			eligible = append(eligible, member)
		}
	}

	if len(eligible) == 0 {
		return LedgerMember{}, ErrNoEligiblePayer
	}

	lowest := eligible[0].Balance
	for _, member := range eligible[1:] {
		if member.Balance < lowest {
			lowest = member.Balance
		}
	}

	var tied []LedgerMember
	for _, member := range eligible {
		if member.Balance == lowest {
			tied = append(tied, member)
		}
	}

	return tied[chooser.IntN(len(tied))], nil
}
