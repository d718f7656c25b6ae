// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	poolmock "github.com/KirkDiggler/rpg-battle/internal/economy/pool/mock"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-battle/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-battle/internal/repositories/character/mock"
)

// ExpectCharacterGet sets up a mock expectation for loading a character
func ExpectCharacterGet(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	c *entities.Character,
) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{ID: c.ID}).
		Return(&characterrepo.GetOutput{Character: c}, nil)
}

// ExpectCharacterMissing sets up a mock expectation for a player who never started
func ExpectCharacterMissing(ctx context.Context, mockRepo *charactermock.MockRepository, id string) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{ID: id}).
		Return(nil, errors.NotFoundf("character %s not found", id))
}

// ExpectCharacterUpdate sets up a mock expectation for saving a character,
// echoing it back the way the repositories do
func ExpectCharacterUpdate(ctx context.Context, mockRepo *charactermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})
}

// ExpectPayout sets up a mock expectation for one TryEarn call
func ExpectPayout(ctx context.Context, mockPool *poolmock.MockPool, amount int64, err error) *gomock.Call {
	return mockPool.EXPECT().
		TryEarn(ctx, amount).
		Return(err)
}
