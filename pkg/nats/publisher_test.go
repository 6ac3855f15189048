package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "assessment.assessment_submitted", Subject("assessment_submitted"))
}
