// Package prompt reads validated values from an interactive terminal.
//
// Every prompt accepts "back", which abandons the current input flow with
// ErrBack. Invalid values are reported and asked for again.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gorebar/internal/detailing"
)

// ErrBack is returned when the user types "back"
var ErrBack = errors.New("back")

// BackKeyword abandons the current flow
const BackKeyword = "back"

// Prompter asks questions on out and reads answers from in
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Printf writes to the prompter's output
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Line prints prompt and returns the trimmed answer. It returns io.EOF when
// the input ends and ErrBack when the answer is "back".
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	answer := strings.TrimSpace(p.in.Text())
	if strings.EqualFold(answer, BackKeyword) {
		return "", ErrBack
	}
	return answer, nil
}

// Text asks until a non-empty answer is given
func (p *Prompter) Text(prompt string) (string, error) {
	for {
		answer, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		p.Printf("Please enter a value.\n")
	}
}

// Positive asks until a number greater than zero is given
func (p *Prompter) Positive(prompt string) (float64, error) {
	return p.number(prompt, func(v float64) bool { return v > 0 }, "Please enter a valid positive number.")
}

// NonNegative asks until a number of zero or more is given
func (p *Prompter) NonNegative(prompt string) (float64, error) {
	return p.number(prompt, func(v float64) bool { return v >= 0 }, "Please enter a number of zero or more.")
}

func (p *Prompter) number(prompt string, ok func(float64) bool, hint string) (float64, error) {
	for {
		answer, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err == nil && detailing.Finite(v) && ok(v) {
			return v, nil
		}
		p.Printf("%s\n", hint)
	}
}

// PositiveInt asks until a whole number greater than zero is given
func (p *Prompter) PositiveInt(prompt string) (int, error) {
	for {
		answer, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(answer)
		if err == nil && v > 0 {
			return v, nil
		}
		p.Printf("Please enter a valid positive integer.\n")
	}
}

// OneOf asks until one of the allowed integers is given
func (p *Prompter) OneOf(prompt string, allowed ...int) (int, error) {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = strconv.Itoa(a)
	}
	for {
		answer, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(answer)
		if err == nil && slices.Contains(allowed, v) {
			return v, nil
		}
		p.Printf("Please enter one of %s.\n", strings.Join(names, ", "))
	}
}

// Choice prints numbered options and returns the zero based index picked
func (p *Prompter) Choice(title string, options []string) (int, error) {
	p.Printf("\n%s\n", title)
	allowed := make([]int, len(options))
	for i, opt := range options {
		p.Printf("  %d. %s\n", i+1, opt)
		allowed[i] = i + 1
	}
	n, err := p.OneOf(fmt.Sprintf("Select 1-%d: ", len(options)), allowed...)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// YesNo asks until y or n is given
func (p *Prompter) YesNo(prompt string) (bool, error) {
	for {
		answer, err := p.Line(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.Printf("Please enter y or n.\n")
	}
}
