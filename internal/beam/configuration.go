package beam

import "github.com/alexiusacademia/gorebar/internal/detailing"

// Configuration describes how a beam bar is supported at its ends.
// Implemented by Continuous2Support, Continuous1Support, NoSupport and Cantilever.
type Configuration interface {
	validate() error
}

// Continuous2Support is a bar anchored into a support at both ends
type Continuous2Support struct {
	ClearSpan float64 // mm
	Support1  detailing.SupportGeometry
	Support2  detailing.SupportGeometry
}

func (c Continuous2Support) validate() error {
	if err := detailing.RequirePositive("clear span", c.ClearSpan); err != nil {
		return err
	}
	if err := c.Support1.Validate(); err != nil {
		return err
	}
	return c.Support2.Validate()
}

// Continuous1Support is a bar anchored into one support, its far end
// continuing into the adjacent span
type Continuous1Support struct {
	ClearSpan float64 // mm
	Support   detailing.SupportGeometry
}

func (c Continuous1Support) validate() error {
	if err := detailing.RequirePositive("clear span", c.ClearSpan); err != nil {
		return err
	}
	return c.Support.Validate()
}

// NoSupport is a straight bar with a development length past both ends
type NoSupport struct {
	ClearSpan float64 // mm
}

func (c NoSupport) validate() error {
	return detailing.RequirePositive("clear span", c.ClearSpan)
}

// Cantilever is a cantilever top bar
type Cantilever struct {
	Mode CantileverMode
}

func (c Cantilever) validate() error {
	if c.Mode == nil {
		return detailing.Unsupported("cantilever without a mode")
	}
	return c.Mode.validate()
}

// CantileverMode is Proportional or DeadEndExtension
type CantileverMode interface {
	validate() error
}

// Proportional runs the bar a third of the inner span back from the support
type Proportional struct {
	InnerSpan      float64 // mm
	CantileverSpan float64 // mm
}

func (m Proportional) validate() error {
	if err := detailing.RequirePositive("inner span", m.InnerSpan); err != nil {
		return err
	}
	return detailing.RequirePositive("cantilever span", m.CantileverSpan)
}

// DeadEndExtension runs the bar over the full span to a discontinuous end
type DeadEndExtension struct {
	FullSpan float64 // mm
}

func (m DeadEndExtension) validate() error {
	return detailing.RequirePositive("full span", m.FullSpan)
}
