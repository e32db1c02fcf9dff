package provider

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// randSource 基于单一 math/rand 随机流和词表的取值实现
// BuiltinProvider 和 CorpusProvider 共享这套逻辑，只在词表来源上不同
type randSource struct {
	tables tables
	rng    *rand.Rand
}

func newRandSource(t tables, seed int64) *randSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{
		tables: t,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (s *randSource) pick(list []string) string {
	return list[s.rng.Intn(len(list))]
}

func (s *randSource) Name() string {
	return s.pick(s.tables.FirstNames) + " " + s.pick(s.tables.LastNames)
}

func (s *randSource) AddressParts() AddressParts {
	c := s.tables.Cities[s.rng.Intn(len(s.tables.Cities))]
	street := fmt.Sprintf("%d %s", s.rng.Intn(9899)+100, s.pick(s.tables.Streets))
	return AddressParts{
		Street:     street,
		City:       c.Name,
		State:      c.State,
		PostalCode: c.PostalCode,
	}
}

func (s *randSource) Email(name string) string {
	var b strings.Builder
	lastSep := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSep = false
		case !lastSep:
			b.WriteByte('.')
			lastSep = true
		}
	}
	local := strings.TrimSuffix(b.String(), ".")
	if local == "" {
		local = "user"
	}
	return local + "@" + s.pick(s.tables.EmailDomains)
}

func (s *randSource) Word(category string) string {
	if words, ok := s.tables.Words[category]; ok && len(words) > 0 {
		return s.pick(words)
	}
	// 未知类目回退到通用词表
	return s.pick(s.tables.Words["generic"])
}

func (s *randSource) UUID() string {
	// rand.Rand 实现了 io.Reader，种子固定时 UUID 也可复现
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		// 从内存随机流读取不会失败，这里仅为满足接口
		panic("uuid from rand stream: " + err.Error())
	}
	return id.String()
}

func (s *randSource) Int(lo, hi int) (int, error) {
	if lo > hi {
		return 0, errors.WithMessagef(ErrInvalidRange, "lo %d > hi %d", lo, hi)
	}
	return lo + s.rng.Intn(hi-lo+1), nil
}

func (s *randSource) Float(lo, hi float64, decimals int) (float64, error) {
	if lo > hi {
		return 0, errors.WithMessagef(ErrInvalidRange, "lo %v > hi %v", lo, hi)
	}
	v := lo + s.rng.Float64()*(hi-lo)
	return Round(v, decimals), nil
}

func (s *randSource) Date(start, end time.Time) (time.Time, error) {
	if start.After(end) {
		return time.Time{}, errors.WithMessagef(ErrInvalidRange,
			"start %s after end %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, s.rng.Intn(days+1)), nil
}

func (s *randSource) Choice(options []WeightedOption) (string, error) {
	if len(options) == 0 {
		return "", errors.WithMessage(ErrInvalidRange, "empty options")
	}
	total := 0
	for _, opt := range options {
		if opt.Weight < 0 {
			return "", errors.WithMessagef(ErrInvalidRange, "negative weight for %q", opt.Value)
		}
		total += opt.Weight
	}
	if total == 0 {
		// 全零权重退化为均匀选取
		return options[s.rng.Intn(len(options))].Value, nil
	}
	n := s.rng.Intn(total)
	for _, opt := range options {
		n -= opt.Weight
		if n < 0 {
			return opt.Value, nil
		}
	}
	return options[len(options)-1].Value, nil
}

// Round 四舍五入到指定小数位
func Round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
