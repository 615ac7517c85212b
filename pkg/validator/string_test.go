package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

func TestString(t *testing.T) {
	t.Parallel()

	t.Run("passes through by default", func(t *testing.T) {
		res := validate(validator.String(), " Mixed Case ")
		require.True(t, res.OK())
		assert.Equal(t, " Mixed Case ", res.Value())
	})

	t.Run("trim and lowercase", func(t *testing.T) {
		res := validate(validator.String().Trim().ToLowerCase(), "  Hello World  ")
		require.True(t, res.OK())
		assert.Equal(t, "hello world", res.Value())
	})

	t.Run("last case transform wins", func(t *testing.T) {
		res := validate(validator.String().ToUpperCase().ToLowerCase(), "MiXeD")
		assert.Equal(t, "mixed", res.Value())

		res = validate(validator.String().ToLowerCase().ToUpperCase(), "MiXeD")
		assert.Equal(t, "MIXED", res.Value())
	})

	t.Run("length counts characters", func(t *testing.T) {
		v := validator.String().MinLength(2).MaxLength(4)

		assert.Equal(t, validator.KindInvalidLength, validate(v, "a").Kind())
		assert.Equal(t, validator.KindInvalidLength, validate(v, "abcde").Kind())
		assert.True(t, validate(v, "äöüß").OK())
	})

	t.Run("length is checked after trimming", func(t *testing.T) {
		res := validate(validator.String().Trim().MinLength(3), "  ab  ")
		assert.Equal(t, validator.KindInvalidLength, res.Kind())
	})

	t.Run("required characters", func(t *testing.T) {
		v := validator.String().RequiredCharacters(validator.LettersNumbersUnderscores)

		assert.True(t, validate(v, "user_01").OK())
		assert.Equal(t, validator.KindInvalidChars, validate(v, "user-01").Kind())
	})

	t.Run("denied characters", func(t *testing.T) {
		v := validator.String().DenyCharacters([]rune{'<', '>'})

		assert.True(t, validate(v, "plain").OK())
		assert.Equal(t, validator.KindInvalidChars, validate(v, "<b>").Kind())
	})

	t.Run("control characters are added to the deny list", func(t *testing.T) {
		v := validator.String().DenyCharacters([]rune{'x'}).NoNewlinesOrControlChars()

		assert.Equal(t, validator.KindInvalidChars, validate(v, "line\nbreak").Kind())
		assert.Equal(t, validator.KindInvalidChars, validate(v, "tab\there").Kind())
		assert.Equal(t, validator.KindInvalidChars, validate(v, "box").Kind())
		assert.True(t, validate(v, "fine").OK())
	})

	t.Run("deny list set afterwards replaces control characters", func(t *testing.T) {
		v := validator.String().NoNewlinesOrControlChars().DenyCharacters([]rune{'x'})

		assert.True(t, validate(v, "line\nbreak").OK())
	})

	t.Run("case requirements", func(t *testing.T) {
		up := validator.String().RequireUppercase()
		assert.True(t, validate(up, "ABC-123").OK())
		assert.Equal(t, validator.KindInvalidCase, validate(up, "ABc").Kind())

		low := validator.String().RequireLowercase()
		assert.True(t, validate(low, "abc-123").OK())
		assert.Equal(t, validator.KindInvalidCase, validate(low, "abC").Kind())
	})

	t.Run("blank", func(t *testing.T) {
		v := validator.String().NotBlank()

		assert.Equal(t, validator.KindBlankString, validate(v, "").Kind())
		assert.Equal(t, validator.KindBlankString, validate(v, " \t ").Kind())
		assert.True(t, validate(v, " x ").OK())
	})

	t.Run("regex must match the whole value", func(t *testing.T) {
		v := validator.String().Regex(regexp.MustCompile(`[a-z]+`))

		assert.True(t, validate(v, "abc").OK())
		assert.Equal(t, validator.KindPatternMismatch, validate(v, "abc1").Kind())

		alt := validator.String().RegexString(`cat|dog`)
		assert.True(t, validate(alt, "dog").OK())
		assert.Equal(t, validator.KindPatternMismatch, validate(alt, "catdog").Kind())
	})

	t.Run("membership", func(t *testing.T) {
		in := validator.String().IsIn("asc", "desc")
		assert.True(t, validate(in, "asc").OK())
		res := validate(in, "up")
		assert.Equal(t, validator.KindInvalidValue, res.Kind())
		assert.Contains(t, res.Message(), "asc, desc")

		notIn := validator.String().IsNotIn("admin", "root")
		assert.True(t, validate(notIn, "alice").OK())
		assert.Equal(t, validator.KindInvalidValue, validate(notIn, "root").Kind())
	})

	t.Run("first failing check wins", func(t *testing.T) {
		v := validator.String().MaxLength(3).DenyCharacters([]rune{'!'}).IsIn("ok")

		assert.Equal(t, validator.KindInvalidLength, validate(v, "!!!!").Kind())
		assert.Equal(t, validator.KindInvalidChars, validate(v, "!!").Kind())
		assert.Equal(t, validator.KindInvalidValue, validate(v, "no").Kind())
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid addresses", func(t *testing.T) {
		for _, in := range []string{"user@example.com", "first.last@mail.example.org", "a_b@x-y.io"} {
			res := validate(validator.Email(), in)
			require.True(t, res.OK(), in)
			assert.Equal(t, in, res.Value())
		}
	})

	t.Run("rejects invalid addresses", func(t *testing.T) {
		for _, in := range []string{"user", "user@", "@example.com", "user@example", "user@example.c", "us er@example.com"} {
			assert.Equal(t, validator.KindInvalidEmail, validate(validator.Email(), in).Kind(), in)
		}
	})

	t.Run("blank", func(t *testing.T) {
		assert.Equal(t, validator.KindBlankString, validate(validator.Email(), "   ").Kind())
	})

	t.Run("trim", func(t *testing.T) {
		assert.Equal(t, validator.KindInvalidEmail, validate(validator.Email(), " user@example.com ").Kind())

		res := validate(validator.Email().Trim(), " user@example.com ")
		require.True(t, res.OK())
		assert.Equal(t, "user@example.com", res.Value())
	})

	t.Run("length", func(t *testing.T) {
		v := validator.Email().MinLength(10).MaxLength(20)
		assert.Equal(t, validator.KindInvalidLength, validate(v, "a@b.io").Kind())
		assert.Equal(t, validator.KindInvalidLength, validate(v, "someone.long@example.com").Kind())
		assert.True(t, validate(v, "me@example.com").OK())
	})
}
