package random

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	name      string
	available bool
	fill      byte
	err       error
	calls     int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Available() bool { return f.available }

func (f *fakeSource) Fill(p []byte) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	for i := range p {
		p[i] = f.fill
	}
	return nil
}

func TestBytes(t *testing.T) {
	data, err := Bytes(16)
	require.NoError(t, err)
	assert.Len(t, data, 16)

	empty, err := Bytes(0)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)

	_, err = Bytes(-1)
	assert.Error(t, err)
}

func TestRuntime(t *testing.T) {
	source := Runtime()
	assert.Equal(t, "runtime", source.Name())
	assert.True(t, source.Available())
	data := make([]byte, 32)
	require.NoError(t, source.Fill(data))
	assert.NotEqual(t, make([]byte, 32), data)
}

func TestRuntime_ShortRead(t *testing.T) {
	source := &runtimeSource{reader: bytes.NewReader([]byte{1, 2, 3})}
	err := source.Fill(make([]byte, 16))
	assert.Error(t, err)
}

func TestHost(t *testing.T) {
	source := Host()
	assert.Equal(t, "host", source.Name())
	if !source.Available() {
		assert.Error(t, source.Fill(make([]byte, 4)))
		return
	}
	data := make([]byte, 64)
	require.NoError(t, source.Fill(data))
	assert.NotEqual(t, make([]byte, 64), data)
}

func TestSelector_Bytes(t *testing.T) {
	fillErr := errors.New("fill failed")
	var testCases = []struct {
		description     string
		mode            Mode
		preferred       *fakeSource
		fallback        *fakeSource
		expect          byte
		expectErr       error
		expectPreferred int
		expectFallback  int
	}{
		{
			description:     "auto prefers available host",
			mode:            ModeAuto,
			preferred:       &fakeSource{name: "host", available: true, fill: 0xaa},
			fallback:        &fakeSource{name: "runtime", available: true, fill: 0xbb},
			expect:          0xaa,
			expectPreferred: 1,
		},
		{
			description:    "auto falls back when host is unavailable",
			mode:           ModeAuto,
			preferred:      &fakeSource{name: "host", fill: 0xaa},
			fallback:       &fakeSource{name: "runtime", available: true, fill: 0xbb},
			expect:         0xbb,
			expectFallback: 1,
		},
		{
			description:     "auto does not retry on fallback after host failure",
			mode:            ModeAuto,
			preferred:       &fakeSource{name: "host", available: true, err: fillErr},
			fallback:        &fakeSource{name: "runtime", available: true, fill: 0xbb},
			expectErr:       fillErr,
			expectPreferred: 1,
		},
		{
			description: "host mode requires host",
			mode:        ModeHost,
			preferred:   &fakeSource{name: "host"},
			fallback:    &fakeSource{name: "runtime", available: true, fill: 0xbb},
			expectErr:   ErrUnavailable,
		},
		{
			description:    "runtime mode skips host",
			mode:           ModeRuntime,
			preferred:      &fakeSource{name: "host", available: true, fill: 0xaa},
			fallback:       &fakeSource{name: "runtime", available: true, fill: 0xbb},
			expect:         0xbb,
			expectFallback: 1,
		},
		{
			description:    "runtime failure propagates",
			mode:           ModeRuntime,
			preferred:      &fakeSource{name: "host", available: true, fill: 0xaa},
			fallback:       &fakeSource{name: "runtime", available: true, err: fillErr},
			expectErr:      fillErr,
			expectFallback: 1,
		},
	}

	for _, testCase := range testCases {
		selector := NewSelector(WithMode(testCase.mode), WithPreferred(testCase.preferred), WithFallback(testCase.fallback))
		data, err := selector.Bytes(16)
		assert.Equal(t, testCase.expectPreferred, testCase.preferred.calls, testCase.description)
		assert.Equal(t, testCase.expectFallback, testCase.fallback.calls, testCase.description)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			assert.Nil(t, data, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, bytes.Repeat([]byte{testCase.expect}, 16), data, testCase.description)
	}
}

func TestParseMode(t *testing.T) {
	var testCases = []struct {
		input     string
		expect    Mode
		expectErr bool
	}{
		{input: "", expect: ModeAuto},
		{input: "auto", expect: ModeAuto},
		{input: "HOST", expect: ModeHost},
		{input: " runtime ", expect: ModeRuntime},
		{input: "urandom", expectErr: true},
	}
	for _, testCase := range testCases {
		actual, err := ParseMode(testCase.input)
		if testCase.expectErr {
			assert.Error(t, err, testCase.input)
			continue
		}
		assert.NoError(t, err, testCase.input)
		assert.Equal(t, testCase.expect, actual, testCase.input)
		assert.Equal(t, actual, mustParse(t, actual.String()))
	}
}

func mustParse(t *testing.T, text string) Mode {
	mode, err := ParseMode(text)
	require.NoError(t, err)
	return mode
}

func TestSelector_NilSources(t *testing.T) {
	unavailable := &fakeSource{name: "host"}
	var testCases = []struct {
		description  string
		selector     *Selector
		expectSource string
		expectErr    bool
	}{
		{
			description:  "nil fallback keeps runtime",
			selector:     NewSelector(WithFallback(nil), WithPreferred(unavailable)),
			expectSource: "runtime",
		},
		{
			description:  "nil preferred keeps host in host mode",
			selector:     NewSelector(WithMode(ModeHost), WithPreferred(nil)),
			expectSource: Host().Name(),
			expectErr:    !Host().Available(),
		},
		{
			description: "zero selector has no sources",
			selector:    &Selector{},
			expectErr:   true,
		},
		{
			description: "zero selector in host mode has no sources",
			selector:    &Selector{mode: ModeHost},
			expectErr:   true,
		},
		{
			description: "zero selector in runtime mode has no sources",
			selector:    &Selector{mode: ModeRuntime},
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		data, source, err := testCase.selector.Read(16)
		if testCase.expectErr {
			assert.ErrorIs(t, err, ErrUnavailable, testCase.description)
			assert.Nil(t, data, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Len(t, data, 16, testCase.description)
		assert.Equal(t, testCase.expectSource, source.Name(), testCase.description)
	}
}

func TestSelector_Read(t *testing.T) {
	preferred := &fakeSource{name: "host", available: true, fill: 0x11}
	selector := NewSelector(WithPreferred(preferred))
	data, source, err := selector.Read(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x11, 0x11, 0x11}, data)
	assert.Same(t, preferred, source)

	failing := &fakeSource{name: "host", available: true, err: errors.New("fill failed")}
	_, source, err = NewSelector(WithPreferred(failing)).Read(4)
	assert.Error(t, err)
	assert.Same(t, failing, source)
}
