package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUint64(t *testing.T) {
	var body struct {
		Version FlexUint64 `json:"recordVersion"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"recordVersion": 7}`), &body))
	assert.Equal(t, uint64(7), body.Version.Uint64())

	require.NoError(t, json.Unmarshal([]byte(`{"recordVersion": "12"}`), &body))
	assert.Equal(t, uint64(12), body.Version.Uint64())

	assert.Error(t, json.Unmarshal([]byte(`{"recordVersion": "x"}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"recordVersion": true}`), &body))
}

func TestFlexList(t *testing.T) {
	var ids FlexList[FlexUint64]

	require.NoError(t, json.Unmarshal([]byte(`3`), &ids))
	assert.Equal(t, []FlexUint64{3}, ids.Slice())

	require.NoError(t, json.Unmarshal([]byte(`[1, "2", 3]`), &ids))
	assert.Equal(t, []FlexUint64{1, 2, 3}, ids.Slice())
}

func TestDomainErrorsMatchSentinels(t *testing.T) {
	var err error = fmt.Errorf("update: %w", &ConflictError{Table: "animalwaitinglist", ID: 4, Message: "stale"})
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrValidation))

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint64(4), conflict.ID)

	err = &ValidationError{Field: "description", Message: "Description cannot be blank"}
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "Description cannot be blank", err.Error())

	err = &NotFoundError{Table: "animalwaitinglist", ID: 9}
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "animalwaitinglist 9 not found", err.Error())
}
