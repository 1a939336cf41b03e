package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckResolvesWorkedExample(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	ok := check(stdout, stderr, "../../testdata/tsconfig.json")
	require.True(t, ok, stderr.String())
	assert.Contains(t, stdout.String(), "module mode: es2022")
	assert.Contains(t, stdout.String(), "call resolved")
}

func TestCheckReportsMissingConfig(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	ok := check(stdout, stderr, "does/not/exist.json")
	assert.False(t, ok)
	assert.NotEmpty(t, stderr.String())
}

func TestListIntrinsicsPrintsEveryRegisteredName(t *testing.T) {
	stdout := &bytes.Buffer{}
	listIntrinsics(stdout)
	assert.Contains(t, stdout.String(), "satisfies")
	assert.Contains(t, stdout.String(), "compile_type_to_object")
}
