package services

import (
	"context"
	"testing"
	"time"

	"experio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetExperienceSlotsReturnsUpcomingOnly(t *testing.T) {
	store := newFakeStore()
	svc := NewExperienceService(&fakeExperienceRepo{store: store}, &fakeSlotRepo{store: store})

	exp := store.addExperience(&models.Experience{Title: "Coffee Trail", BasePrice: 1299})
	now := time.Now()
	store.addSlot(&models.Slot{ExperienceID: exp.ID, StartTime: now.Add(-2 * time.Hour), TotalCapacity: 12})
	upcoming := store.addSlot(&models.Slot{ExperienceID: exp.ID, StartTime: now.Add(2 * time.Hour), TotalCapacity: 12})

	slots, err := svc.GetExperienceSlots(context.Background(), exp.ID.Hex())
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, upcoming.ID, slots[0].ID)
}

func TestGetExperienceNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewExperienceService(&fakeExperienceRepo{store: store}, &fakeSlotRepo{store: store})

	_, err := svc.GetExperience(context.Background(), primitive.NewObjectID().Hex())
	assert.Equal(t, models.ErrorKindNotFound, models.KindOf(err))

	_, err = svc.GetExperience(context.Background(), "not-a-hex-id")
	assert.Equal(t, models.ErrorKindNotFound, models.KindOf(err))
}
