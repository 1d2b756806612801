package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubJoinBroadcastsSnapshot(t *testing.T) {
	hub := NewHub()
	userA := uuid.New()

	ch, leave := hub.Join(userA, "Amine")
	defer leave()

	select {
	case snap := <-ch:
		assert.Equal(t, "join", snap.Type)
		require.Len(t, snap.Members, 1)
		assert.Equal(t, userA.String(), snap.Members[0].UserID)
		assert.Equal(t, "Amine", snap.Members[0].FullName)
		assert.Equal(t, 1, snap.Count)
	case <-time.After(time.Second):
		t.Fatal("no snapshot received")
	}
}

func TestHubLeaveBroadcastsToRemaining(t *testing.T) {
	hub := NewHub()
	chA, leaveA := hub.Join(uuid.New(), "A")
	defer leaveA()
	<-chA // own join

	userB := uuid.New()
	_, leaveB := hub.Join(userB, "B")
	<-chA // B's join
	leaveB()

	select {
	case snap := <-chA:
		assert.Equal(t, "leave", snap.Type)
		assert.Equal(t, 1, snap.Count)
	case <-time.After(time.Second):
		t.Fatal("no leave snapshot received")
	}
}

func TestHubDeduplicatesMultipleConnections(t *testing.T) {
	hub := NewHub()
	user := uuid.New()

	_, leave1 := hub.Join(user, "A")
	defer leave1()
	_, leave2 := hub.Join(user, "A")

	members := hub.Members()
	require.Len(t, members, 1)

	// one tab closing keeps the user online
	leave2()
	assert.Len(t, hub.Members(), 1)

	leave1()
	assert.Empty(t, hub.Members())
}

func TestHubSlowConsumerDoesNotBlock(t *testing.T) {
	hub := NewHub()
	_, leaveSlow := hub.Join(uuid.New(), "slow") // never drained
	defer leaveSlow()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 20; i++ {
			_, leave := hub.Join(uuid.New(), "x")
			leave()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on slow consumer")
	}
}
