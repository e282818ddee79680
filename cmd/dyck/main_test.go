package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-dyck/dycktesting"
	"github.com/forestrie/go-dyck/split"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSplitCommand(t *testing.T) {
	type args struct {
		argv []string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr error
	}{
		{
			"native",
			args{[]string{"split", "0b11100"}},
			"split 10000\nleft  1\nright 110\n", nil,
		},
		{
			"fixture with separators",
			args{[]string{"split", "--repr", "big", "0b1_11010_1101100_00"}},
			"split 100000000000000\nleft  1\nright 1101011011000\n", nil,
		},
		{
			"wide",
			args{[]string{"split", "--repr", "512", "11010"}},
			"split 100\nleft  110\nright 1\n", nil,
		},
		{
			"128",
			args{[]string{"split", "--repr", "128", "11010"}},
			"split 100\nleft  110\nright 1\n", nil,
		},
		{"leaf", args{[]string{"split", "1"}}, "no children\n", nil},
		{"not base 2", args{[]string{"split", "0b121"}}, "", errBadStructure},
		{"empty", args{[]string{"split", "0b"}}, "", errBadStructure},
		{"malformed", args{[]string{"split", "110110"}}, "", split.ErrInvalidStructure},
		{"unknown repr", args{[]string{"split", "--repr", "256", "1"}}, "", errUnknownRepr},
		{
			"too wide for native",
			args{[]string{"split", "1" + strings.Repeat("0", 64)}},
			"", errTooWide,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args.argv...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitReprFromEnvironment(t *testing.T) {
	t.Setenv("DYCK_REPR", "bogus")
	_, err := run(t, "split", "110")
	assert.ErrorIs(t, err, errUnknownRepr)
}

func TestEnumerateCommand(t *testing.T) {
	got, err := run(t, "enumerate", "--leaves", "3")
	require.NoError(t, err)
	assert.Equal(t, "11010 ((0 1) 2)\n11100 (0 (1 2))\n", got)

	got, err = run(t, "enumerate", "--leaves", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 0\n", got)

	_, err = run(t, "enumerate", "--leaves", "0")
	assert.ErrorIs(t, err, errLeavesRange)
}

func TestValidateCommand(t *testing.T) {
	got, err := run(t, "validate", "--max-leaves", "6", "--random", "5", "--repr", "uint16,big")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "uint16"))
	assert.True(t, strings.HasPrefix(lines[2], "big"))
}

func TestValidateMaxLeavesBounded(t *testing.T) {
	_, err := run(t, "validate", "--max-leaves", "20")
	assert.ErrorIs(t, err, dycktesting.ErrMaxLeavesRange)

	t.Setenv("DYCK_MAX_LEAVES", "32")
	_, err = run(t, "validate")
	assert.ErrorIs(t, err, dycktesting.ErrMaxLeavesRange)
}

func TestLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "enumerate")
	assert.Error(t, err)

	_, err = run(t, "--log-level", "debug", "enumerate")
	assert.NoError(t, err)
}
