package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microlead/loan-amortization/internal/config"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(&config.Config{MaxPrincipal: 1e12}, strings.NewReader(input), &out), &out
}

func TestReadRequest(t *testing.T) {
	p, out := newTestPrompter("10000\n5,5\n2\n")

	req, err := p.ReadRequest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10000), req.Principal)
	assert.Equal(t, "5.5", req.AnnualRatePercent.String())
	assert.Equal(t, 2, req.DurationYears)
	assert.Contains(t, out.String(), amountPrompt)
	assert.Contains(t, out.String(), ratePrompt)
	assert.Contains(t, out.String(), yearsPrompt)
}

func TestReadRequestRepromptsInvalidInput(t *testing.T) {
	p, out := newTestPrompter("0\nabc\n10000\n0\n123\n5\n100\n2\n")

	req, err := p.ReadRequest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10000), req.Principal)
	assert.Equal(t, "5", req.AnnualRatePercent.String())
	assert.Equal(t, 2, req.DurationYears)
	assert.Equal(t, 2, strings.Count(out.String(), amountInvalid))
	assert.Equal(t, 2, strings.Count(out.String(), rateInvalid))
	assert.Equal(t, 1, strings.Count(out.String(), yearsInvalid))
}

func TestReadRequestWindowsLineEndings(t *testing.T) {
	p, _ := newTestPrompter("2500\r\n3.2\r\n4\r\n")

	req, err := p.ReadRequest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2500), req.Principal)
	assert.Equal(t, 4, req.DurationYears)
}

func TestReadRequestEOF(t *testing.T) {
	p, _ := newTestPrompter("10000\n")

	_, err := p.ReadRequest(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadRequestLastLineWithoutNewline(t *testing.T) {
	p, _ := newTestPrompter("10000\n5\n2")

	req, err := p.ReadRequest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, req.DurationYears)
}

func TestConfirm(t *testing.T) {
	p, out := newTestPrompter("peut-être\no\n")

	yes, err := p.Confirm(context.Background(), "Voulez-vous exporter les résultats en PDF ?")
	require.NoError(t, err)

	assert.True(t, yes)
	assert.Contains(t, out.String(), "Voulez-vous exporter les résultats en PDF ? (O/N)")
	assert.Equal(t, 1, strings.Count(out.String(), choiceInvalid))
}

func TestConfirmNo(t *testing.T) {
	p, _ := newTestPrompter("N\n")

	yes, err := p.Confirm(context.Background(), "Voulez-vous effectuer une autre simulation ?")
	require.NoError(t, err)
	assert.False(t, yes)
}

func TestMessages(t *testing.T) {
	p, out := newTestPrompter("")

	p.Welcome()
	p.Error("erreur")
	p.Success("ok")

	assert.Equal(t, welcomeText+"\nerreur\nok\n", out.String())
}

func TestReadRequestCancelledWhileBlocked(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	var out bytes.Buffer
	p := NewPrompter(&config.Config{MaxPrincipal: 1e12}, r, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.ReadRequest(ctx)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("ReadRequest did not return after cancel")
	}
	assert.Contains(t, out.String(), amountPrompt)
}

func TestConfirmCancelledContext(t *testing.T) {
	p, _ := newTestPrompter("O\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Confirm(ctx, "Voulez-vous effectuer une autre simulation ?")
	assert.ErrorIs(t, err, context.Canceled)
}
