package provider

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBuiltinProvider_Reproducible(t *testing.T) {
	// 相同种子 + 相同调用序列，结果必须完全一致
	p1, err := NewBuiltinProviderWithOptions(&BuiltinProviderOptions{Seed: 42})
	assert.NoError(t, err)
	p2, err := NewBuiltinProviderWithOptions(&BuiltinProviderOptions{Seed: 42})
	assert.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, p1.Name(), p2.Name())

		n1, err1 := p1.Int(0, 1000)
		n2, err2 := p2.Int(0, 1000)
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		assert.Equal(t, n1, n2)

		f1, _ := p1.Float(0, 100, 2)
		f2, _ := p2.Float(0, 100, 2)
		assert.Equal(t, f1, f2)

		assert.Equal(t, p1.UUID(), p2.UUID())
	}
}

func TestBuiltinProvider_IntBounds(t *testing.T) {
	p, _ := NewBuiltinProviderWithOptions(&BuiltinProviderOptions{Seed: 1})

	for i := 0; i < 1000; i++ {
		n, err := p.Int(1, 10)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 10)
	}

	// 单点区间
	n, err := p.Int(7, 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	// 非法区间
	_, err = p.Int(10, 1)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestBuiltinProvider_Float(t *testing.T) {
	p, _ := NewBuiltinProviderWithOptions(&BuiltinProviderOptions{Seed: 1})

	for i := 0; i < 1000; i++ {
		f, err := p.Float(9.99, 199.99, 2)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, f, 9.99)
		assert.LessOrEqual(t, f, 199.99)
		// 保留两位小数
		assert.Equal(t, Round(f, 2), f)
	}

	_, err := p.Float(10, 1, 2)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestBuiltinProvider_Date(t *testing.T) {
	p, _ := NewBuiltinProviderWithOptions(&BuiltinProviderOptions{Seed: 1})

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		d, err := p.Date(start, end)
		assert.NoError(t, err)
		assert.False(t, d.Before(start))
		assert.False(t, d.After(end))
	}

	_, err := p.Date(end, start)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestBuiltinProvider_Email(t *testing.T) {
	p, _ := NewBuiltinProviderWithOptions(&BuiltinProviderOptions{Seed: 1})

	email := p.Email("John Smith")
	assert.True(t, strings.HasPrefix(email, "john.smith@"), "email %s", email)
	assert.Contains(t, email, "@")

	// 空名字也要产出合法地址
	email = p.Email("")
	assert.True(t, strings.HasPrefix(email, "user@"), "email %s", email)
}

func TestBuiltinProvider_Choice(t *testing.T) {
	p, _ := NewBuiltinProviderWithOptions(&BuiltinProviderOptions{Seed: 1})

	options := []WeightedOption{
		{Value: "North", Weight: 1},
		{Value: "South", Weight: 0},
	}
	for i := 0; i < 100; i++ {
		v, err := p.Choice(options)
		assert.NoError(t, err)
		assert.Equal(t, "North", v)
	}

	// 空候选集
	_, err := p.Choice(nil)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	// 全零权重退化为均匀选取
	v, err := p.Choice([]WeightedOption{{Value: "a"}, {Value: "b"}})
	assert.NoError(t, err)
	assert.Contains(t, []string{"a", "b"}, v)
}

func TestBuiltinProvider_Word(t *testing.T) {
	p, _ := NewBuiltinProviderWithOptions(&BuiltinProviderOptions{Seed: 1})

	w := p.Word("color")
	assert.NotEmpty(t, w)

	// 未知类目回退到通用词表
	w = p.Word("no-such-category")
	assert.NotEmpty(t, w)
}
