package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"meal_poll_bot/internal/db/models"
	"meal_poll_bot/internal/db/repositories"
	mock_repositories "meal_poll_bot/internal/db/repositories/mocks"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const ledgerID = "0b6f3a8e-4c1d-4f7a-9a52-6d9c2e1f8b34"

func TestAddLedgerUser_Saves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mappingRepo := mock_repositories.NewMockIdentityMappingRepository(ctrl)
	command := NewAddLedgerUserCommand(mappingRepo, zap.NewNop().Sugar())

	mapping := &models.IdentityMapping{LedgerMemberID: ledgerID, ChatUserID: "U024BE7LH", Comment: "Bob from accounting"}
	mappingRepo.EXPECT().Save(gomock.Any(), mapping).Return(mapping, nil)

	response := command.Handle(context.Background(), slack.SlashCommand{
		Command: "/addwbwuser",
		Text:    ledgerID + " <@U024BE7LH|bob> Bob from accounting",
	})

	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	assert.Equal(t, "Saved uuid "+ledgerID+", userid U024BE7LH in the database with comment Bob from accounting", response.Text)
}

func TestAddLedgerUser_MentionWithoutName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mappingRepo := mock_repositories.NewMockIdentityMappingRepository(ctrl)
	command := NewAddLedgerUserCommand(mappingRepo, zap.NewNop().Sugar())

	mapping := &models.IdentityMapping{LedgerMemberID: ledgerID, ChatUserID: "U1"}
	mappingRepo.EXPECT().Save(gomock.Any(), mapping).Return(mapping, nil)

	response := command.Handle(context.Background(), slack.SlashCommand{Text: ledgerID + " <@U1>"})
	assert.Contains(t, response.Text, "Saved uuid")
}

func TestAddLedgerUser_RejectsInvalidInput(t *testing.T) {
	cases := map[string]string{
		"":                            addLedgerUserUsage,
		ledgerID:                      addLedgerUserUsage,
		"not-a-uuid <@U1|bob>":        "First argument must be a uuid",
		ledgerID + " bob":             "User should be an @ mention of a slack user",
		ledgerID + " <@W1|workspace>": "User should be an @ mention of a slack user",
		ledgerID + " <#C1|general>":   "User should be an @ mention of a slack user",
	}

	for text, expected := range cases {
		t.Run(text, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			command := NewAddLedgerUserCommand(mock_repositories.NewMockIdentityMappingRepository(ctrl), zap.NewNop().Sugar())

			response := command.Handle(context.Background(), slack.SlashCommand{Text: text})
			assert.Equal(t, expected, response.Text)
		})
	}
}

func TestAddLedgerUser_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mappingRepo := mock_repositories.NewMockIdentityMappingRepository(ctrl)
	command := NewAddLedgerUserCommand(mappingRepo, zap.NewNop().Sugar())

	mappingRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

	response := command.Handle(context.Background(), slack.SlashCommand{Text: ledgerID + " <@U1|bob>"})
	assert.Equal(t, DefaultErrorMessage(), response)
}

func TestStatus_NoPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	command := NewStatusCommand("C1", pollRepo, zap.NewNop().Sugar())

	pollRepo.EXPECT().GetLatest(gomock.Any(), "C1").Return(nil, repositories.ErrPollNotFound)

	response := command.Handle(context.Background(), slack.SlashCommand{Command: "/mealpoll"})
	assert.Equal(t, "Unopened: no poll has been posted yet", response.Text)
}

func TestStatus_DecidedPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	command := NewStatusCommand("C1", pollRepo, zap.NewNop().Sugar())

	decidedAt := time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC)
	pollRepo.EXPECT().GetLatest(gomock.Any(), "C1").Return(&models.Poll{
		ID:        1,
		Date:      time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Choice:    "pizza",
		DecidedAt: &decidedAt,
	}, nil)

	response := command.Handle(context.Background(), slack.SlashCommand{Command: "/mealpoll"})
	assert.Equal(t, "Decided poll of 2024-03-04\nDecided: :pizza:", response.Text)
}

func TestCanHandle(t *testing.T) {
	assert.True(t, NewAddLedgerUserCommand(nil, zap.NewNop().Sugar()).CanHandle("/addwbwuser"))
	assert.False(t, NewAddLedgerUserCommand(nil, zap.NewNop().Sugar()).CanHandle("/mealpoll"))
	assert.True(t, NewStatusCommand("C1", nil, zap.NewNop().Sugar()).CanHandle("/mealpoll"))
}
