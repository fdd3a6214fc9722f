// Package console собирает параметры кредита в терминале.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/microlead/loan-amortization/internal/calculations"
	"github.com/microlead/loan-amortization/internal/config"
	"github.com/microlead/loan-amortization/internal/validators"
)

const (
	welcomeText  = "Bienvenu chez Microlead pour votre simulation de calcul d'amortissement de prêt"
	amountPrompt = "Montant du prêt en euros : "
	ratePrompt   = "Taux d'intérêt nominal annuel : "
	yearsPrompt  = "Durée du prêt en années : "

	amountInvalid = "Montant invalide. Veuillez réessayer."
	rateInvalid   = "Taux d'intérêt invalide. Veuillez réessayer."
	yearsInvalid  = "Durée invalide. Veuillez réessayer."
	choiceInvalid = "Choix invalide. Veuillez répondre par 'O' pour oui ou 'N' pour non."
)

// Prompter читает ответы пользователя построчно и печатает подсказки
type Prompter struct {
	cfg  *config.Config
	in   *bufio.Reader
	out  io.Writer
	err  lipgloss.Style
	ok   lipgloss.Style
	warn lipgloss.Style

	start sync.Once
	lines chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewPrompter создает Prompter. Цвета включаются только если out - терминал.
func NewPrompter(cfg *config.Config, in io.Reader, out io.Writer) *Prompter {
	renderer := lipgloss.NewRenderer(out)
	return &Prompter{
		cfg:   cfg,
		in:    bufio.NewReader(in),
		out:   out,
		err:   renderer.NewStyle().Foreground(lipgloss.Color("9")),
		ok:    renderer.NewStyle().Foreground(lipgloss.Color("10")),
		warn:  renderer.NewStyle().Foreground(lipgloss.Color("11")),
		lines: make(chan lineResult),
	}
}

// Welcome печатает приветствие
func (p *Prompter) Welcome() {
	fmt.Fprintln(p.out, welcomeText)
}

// Error печатает сообщение об ошибке красным
func (p *Prompter) Error(msg string) {
	fmt.Fprintln(p.out, p.err.Render(msg))
}

// Success печатает сообщение об успехе зеленым
func (p *Prompter) Success(msg string) {
	fmt.Fprintln(p.out, p.ok.Render(msg))
}

// ReadRequest запрашивает сумму, ставку и срок, повторяя вопрос до корректного ответа.
// Возвращает io.EOF, если ввод закончился, и ctx.Err(), если контекст отменен.
func (p *Prompter) ReadRequest(ctx context.Context) (calculations.LoanRequest, error) {
	var req calculations.LoanRequest
	var err error

	req.Principal, err = ask(ctx, p, amountPrompt, amountInvalid, func(s string) (int64, error) {
		return validators.ParseAmount(p.cfg, s)
	})
	if err != nil {
		return calculations.LoanRequest{}, err
	}
	req.AnnualRatePercent, err = ask(ctx, p, ratePrompt, rateInvalid, validators.ParseRate)
	if err != nil {
		return calculations.LoanRequest{}, err
	}
	req.DurationYears, err = ask(ctx, p, yearsPrompt, yearsInvalid, validators.ParseDuration)
	if err != nil {
		return calculations.LoanRequest{}, err
	}

	return req, nil
}

// Confirm задает вопрос с ответом O/N до получения корректного ответа
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	return ask(ctx, p, p.warn.Render(question+" (O/N)"), choiceInvalid, validators.ParseChoice)
}

func ask[T any](ctx context.Context, p *Prompter, prompt, invalid string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		fmt.Fprint(p.out, prompt)
		line, err := p.readLine(ctx)
		if err != nil {
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, validators.ErrInvalidInput) {
			return zero, err
		}
		p.Error(invalid)
	}
}

// readLine ждет следующую строку или отмену контекста.
// Чтение идет в отдельной горутине, блокирующий ReadString не держит вызывающего.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.start.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

func (p *Prompter) readLines() {
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			p.lines <- lineResult{err: err}
			return
		}
		p.lines <- lineResult{line: strings.TrimRight(line, "\r\n")}
		if err != nil {
			return
		}
	}
}
