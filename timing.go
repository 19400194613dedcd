package svparse

// DelayOrEventControl is a delay, event control or repeat event control.
type DelayOrEventControl interface {
	Node
	delayOrEventControl()
}

// DelayControl is eg. "#5", "#1ns" or "#(d)".
type DelayControl struct {
	Hash  Symbol
	Value Expression
}

func (n DelayControl) Children() []Node    { return nodes(n.Hash, n.Value) }
func (*DelayControl) delayOrEventControl() {}

// EventControl is the event control variants.
type EventControl interface {
	DelayOrEventControl
	eventControl()
}

// EventControlIdentifier is eg. "@ev".
type EventControlIdentifier struct {
	At   Symbol
	Name HierarchicalIdentifier
}

func (n EventControlIdentifier) Children() []Node    { return nodes(n.At, n.Name) }
func (*EventControlIdentifier) delayOrEventControl() {}
func (*EventControlIdentifier) eventControl()        {}

// EventControlExpression is eg. "@(posedge clk or negedge rst_n)".
type EventControlExpression struct {
	At     Symbol
	Events Paren[EventExpression]
}

func (n EventControlExpression) Children() []Node    { return nodes(n.At, n.Events) }
func (*EventControlExpression) delayOrEventControl() {}
func (*EventControlExpression) eventControl()        {}

// EventControlAsterisk is "@*" or "@(*)".
type EventControlAsterisk struct {
	At    Symbol
	Open  *Symbol
	Star  Symbol
	Close *Symbol
}

func (n EventControlAsterisk) Children() []Node    { return nodes(n.At, n.Open, n.Star, n.Close) }
func (*EventControlAsterisk) delayOrEventControl() {}
func (*EventControlAsterisk) eventControl()        {}

// RepeatEventControl is eg. "repeat (3) @(posedge clk)".
type RepeatEventControl struct {
	Repeat Symbol
	Count  Paren[Expression]
	Event  EventControl
}

func (n RepeatEventControl) Children() []Node    { return nodes(n.Repeat, n.Count, n.Event) }
func (*RepeatEventControl) delayOrEventControl() {}

// EventExpression is a list of events separated by "or" or ",".
type EventExpression struct {
	List List[EventPrimary]
}

func (n EventExpression) Children() []Node { return nodes(n.List) }

// EventPrimary is eg. "posedge clk iff en".
type EventPrimary struct {
	Edge *Symbol
	Expr Expression
	Iff  *IffClause
}

func (n EventPrimary) Children() []Node { return nodes(n.Edge, n.Expr, n.Iff) }

// IffClause is "iff cond".
type IffClause struct {
	Iff  Symbol
	Cond Expression
}

func (n IffClause) Children() []Node { return nodes(n.Iff, n.Cond) }

func delayOrEventControl(in Input) (Input, DelayOrEventControl, error) {
	return Choice("delay_or_event_control",
		As[DelayOrEventControl](Map(delayControl, ptr[DelayControl])),
		As[DelayOrEventControl](eventControl),
		repeatEventControl,
	)(in)
}

// procedural_timing_control
func timingControl(in Input) (Input, DelayOrEventControl, error) {
	return Choice("procedural_timing_control",
		As[DelayOrEventControl](Map(delayControl, ptr[DelayControl])),
		As[DelayOrEventControl](eventControl),
	)(in)
}

func delayControl(in Input) (Input, DelayControl, error) {
	return Rule(in, "delay_control", func(in Input) (Input, DelayControl, error) {
		var (
			out DelayControl
			err error
		)
		s := in
		if s, out.Hash, err = s.Literal("#"); err != nil {
			return in, out, err
		}
		if s, out.Value, err = Alt(s, number, parenExpression, hierarchicalPrimary); err != nil {
			return in, DelayControl{}, err
		}
		return s, out, nil
	})
}

func eventControl(in Input) (Input, EventControl, error) {
	return Choice("event_control",
		eventControlAsterisk,
		eventControlExpression,
		eventControlIdentifier,
	)(in)
}

func eventControlAsterisk(in Input) (Input, EventControl, error) {
	var (
		out EventControlAsterisk
		err error
	)
	s := in
	if s, out.At, err = s.Literal("@"); err != nil {
		return in, nil, err
	}
	if t, star, err := s.Literal("*"); err == nil {
		out.Star = star
		return t, &out, nil
	}
	var lparen, rparen Symbol
	if s, lparen, err = s.Literal("("); err != nil {
		return in, nil, err
	}
	if s, out.Star, err = s.Literal("*"); err != nil {
		return in, nil, err
	}
	if s, rparen, err = s.Literal(")"); err != nil {
		return in, nil, err
	}
	out.Open, out.Close = &lparen, &rparen
	return s, &out, nil
}

func eventControlExpression(in Input) (Input, EventControl, error) {
	var (
		out EventControlExpression
		err error
	)
	s := in
	if s, out.At, err = s.Literal("@"); err != nil {
		return in, nil, err
	}
	if s, out.Events, err = Parens(eventExpression)(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func eventControlIdentifier(in Input) (Input, EventControl, error) {
	var (
		out EventControlIdentifier
		err error
	)
	s := in
	if s, out.At, err = s.Literal("@"); err != nil {
		return in, nil, err
	}
	if s, out.Name, err = hierarchicalIdentifier(s); err != nil {
		return in, nil, err
	}
	return s, &out, nil
}

func repeatEventControl(in Input) (Input, DelayOrEventControl, error) {
	return Rule(in, "repeat_event_control", func(in Input) (Input, DelayOrEventControl, error) {
		var (
			out RepeatEventControl
			err error
		)
		s := in
		if s, out.Repeat, err = s.Literal("repeat"); err != nil {
			return in, nil, err
		}
		if s, out.Count, err = Parens(expression)(s); err != nil {
			return in, nil, err
		}
		if s, out.Event, err = eventControl(s); err != nil {
			return in, nil, err
		}
		return s, &out, nil
	})
}

func eventExpression(in Input) (Input, EventExpression, error) {
	return Rule(in, "event_expression", func(in Input) (Input, EventExpression, error) {
		s, list, err := ListOf(OneOfLiterals("or", ","), eventPrimary)(in)
		if err != nil {
			return in, EventExpression{}, err
		}
		return s, EventExpression{List: list}, nil
	})
}

func eventPrimary(in Input) (Input, EventPrimary, error) {
	var (
		out EventPrimary
		err error
	)
	s := in
	if s, out.Edge, err = Opt(OneOfLiterals("posedge", "negedge", "edge"))(s); err != nil {
		return in, out, err
	}
	if s, out.Expr, err = expression(s); err != nil {
		return in, EventPrimary{}, err
	}
	if s, out.Iff, err = Opt(iffClause)(s); err != nil {
		return in, EventPrimary{}, err
	}
	return s, out, nil
}

func iffClause(in Input) (Input, IffClause, error) {
	var (
		out IffClause
		err error
	)
	s := in
	if s, out.Iff, err = s.Literal("iff"); err != nil {
		return in, out, err
	}
	if s, out.Cond, err = expression(s); err != nil {
		return in, IffClause{}, err
	}
	return s, out, nil
}
