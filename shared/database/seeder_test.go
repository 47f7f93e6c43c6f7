package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceResetSQLFollowsMaxID(t *testing.T) {
	// Phone ids are generated, so the sequence must track the highest id
	// actually present, not a row count
	stmt := sequenceResetSQL("organization_phones")

	assert.Equal(t,
		"SELECT setval('organization_phones_id_seq', COALESCE((SELECT MAX(id) FROM organization_phones), 1), true)",
		stmt)
}
