package argmatch

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/argmatch/pattern"
)

const (
	msgArgsNotSequence = "Arguments must be array."
	msgTooFewArgs      = "Given argument count (%d) is less than the argument count defined in pattern (%d-%d)."
	msgTooManyArgs     = "Given argument count (%d) is greater than the argument count defined in pattern (%d-%d)."
	msgUnmatchable     = "The argument #%d ('%v') could not be matched against the pattern."
	msgUnboundRequired = "There is at least one unmatched argument (%s) exists."
)

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger sets the logger used to trace bindings. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Matcher matches argument lists against patterns. It holds no per-call
// state and is safe for concurrent use.
type Matcher struct {
	logger *zap.Logger
}

// New returns a Matcher configured by opts.
func New(opts ...Option) *Matcher {
	m := &Matcher{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match compiles pattern and binds args to it. A nil args slice is an
// empty argument list.
func (m *Matcher) Match(args []any, p string) (Result, error) {
	schema, err := pattern.Compile(p)
	if err != nil {
		m.logger.Debug("pattern rejected", zap.String("pattern", p), zap.Error(err))
		return nil, err
	}
	return m.MatchSchema(args, schema)
}

// MatchValue is Match for inputs of unknown dynamic type. args must be a
// slice or an array and p must be a string.
func (m *Matcher) MatchValue(args any, p any) (Result, error) {
	list, ok := toList(args)
	if !ok {
		return nil, pattern.Errorf(pattern.KindType, msgArgsNotSequence)
	}
	schema, err := pattern.ParseValue(p).Unwrap()
	if err != nil {
		return nil, err
	}
	return m.MatchSchema(list, schema)
}

// MatchSchema binds args to an already compiled schema. The schema is not
// modified.
func (m *Matcher) MatchSchema(args []any, schema pattern.Schema) (Result, error) {
	minCount, maxCount := schema.Bounds()
	switch {
	case len(args) < minCount:
		return nil, pattern.Errorf(pattern.KindRange, msgTooFewArgs, len(args), minCount, maxCount)
	case len(args) > maxCount:
		return nil, pattern.Errorf(pattern.KindRange, msgTooManyArgs, len(args), minCount, maxCount)
	}

	st := newState(args, schema)
	for st.arg < len(args) {
		if err := st.step(m.logger); err != nil {
			m.logger.Debug("argument rejected", zap.Int("argument", st.arg+1), zap.Error(err))
			return nil, err
		}
	}

	if err := st.checkRequired(); err != nil {
		return nil, err
	}
	return st.result, nil
}

// state is a single matching pass: a cursor over arguments and a cursor
// over slots, both moving forward only.
type state struct {
	args    []any
	slots   []pattern.Slot
	matched []bool
	arg     int
	slot    int
	result  Result
}

func newState(args []any, schema pattern.Schema) *state {
	return &state{
		args:    args,
		slots:   schema.Slots,
		matched: make([]bool, len(schema.Slots)),
		result:  make(Result, len(args)),
	}
}

// step binds the current argument to the first remaining slot accepting its
// tag, or to the slot after it when the lookahead says so.
func (s *state) step(logger *zap.Logger) error {
	value := s.args[s.arg]
	tag := pattern.TagOf(value)

	for j := s.slot; j < len(s.slots); j++ {
		if _, ok := s.slots[j].Accepts(tag); !ok {
			continue
		}

		chosen := j
		if s.skipOptional(j, tag) {
			chosen = j + 1
			logger.Debug("optional slot skipped",
				zap.Int("argument", s.arg+1),
				zap.Int("skipped", j),
				zap.Int("slot", chosen))
		}

		name, _ := s.slots[chosen].Accepts(tag)
		s.matched[chosen] = true
		s.result.bind(s.arg, Entry{Value: value, Type: tag, Name: name})
		logger.Debug("argument bound",
			zap.Int("argument", s.arg+1),
			zap.Int("slot", chosen),
			zap.String("type", string(tag)),
			zap.String("name", name))

		s.slot = chosen + 1
		s.arg++
		return nil
	}

	return pattern.Errorf(pattern.KindType, msgUnmatchable, s.arg+1, value)
}

// skipOptional reports whether an argument tagged tag that fits the optional
// slot j should rather go to the required slot j+1: the next argument would
// not fit slot j+1, this one does, and not every slot can be filled anyway.
// Only one slot ahead is considered.
func (s *state) skipOptional(j int, tag pattern.Tag) bool {
	if j+1 >= len(s.slots) || len(s.args) >= len(s.slots) {
		return false
	}
	cur, next := s.slots[j], s.slots[j+1]
	if !cur.Optional || next.Optional || s.arg+1 >= len(s.args) {
		return false
	}
	if _, ok := next.Accepts(pattern.TagOf(s.args[s.arg+1])); ok {
		return false
	}
	_, ok := next.Accepts(tag)
	return ok
}

func (s *state) checkRequired() error {
	for j, slot := range s.slots {
		if !slot.Optional && !s.matched[j] {
			return pattern.Errorf(pattern.KindUnmatched, msgUnboundRequired, slot.Name)
		}
	}
	return nil
}

// toList converts a slice or array of any element type to []any.
func toList(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if list, ok := v.([]any); ok {
		if list == nil {
			return nil, false
		}
		return list, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}

	list := make([]any, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list, true
}
