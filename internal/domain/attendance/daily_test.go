package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDailyStateFirstEntry(t *testing.T) {
	err := CheckDailyState(KindEntry, nil)
	assert.NoError(t, err)
}

func TestCheckDailyStateDuplicateEntry(t *testing.T) {
	today := []Event{{Kind: KindEntry, Valid: true}}
	err := CheckDailyState(KindEntry, today)
	assert.ErrorIs(t, err, ErrDuplicateForDay)
}

func TestCheckDailyStateExitAfterEntry(t *testing.T) {
	today := []Event{{Kind: KindEntry, Valid: true}}
	err := CheckDailyState(KindExit, today)
	assert.NoError(t, err)
}

func TestCheckDailyStateExitWithoutEntry(t *testing.T) {
	err := CheckDailyState(KindExit, nil)
	assert.ErrorIs(t, err, ErrExitWithoutEntry)
}

func TestCheckDailyStateDuplicateExit(t *testing.T) {
	today := []Event{
		{Kind: KindEntry, Valid: true},
		{Kind: KindExit, Valid: true},
	}
	err := CheckDailyState(KindExit, today)
	assert.ErrorIs(t, err, ErrDuplicateForDay)
}
