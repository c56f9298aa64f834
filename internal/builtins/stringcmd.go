package builtins

import (
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nanotcl/nanotcl/internal/ifaceerr"
	"github.com/nanotcl/nanotcl/internal/interp"
	"github.com/nanotcl/nanotcl/internal/numconv"
)

// cmdString dispatches `string sub ...`, grounded on original_source/
// pickle.c's picolCommandString subcommand switch (spec.md §4.5).
func cmdString(i *interp.Interpreter, argv []string, data any) interp.Code {
	if len(argv) < 2 {
		return i.FailArity(2, argv)
	}
	sub, rest := argv[1], argv[2:]
	fn, ok := stringSubs[sub]
	if !ok {
		return i.Fail(ifaceerr.KindName, "No such subcommand for 'string': %s", sub)
	}
	return fn(i, rest)
}

var stringSubs = map[string]func(i *interp.Interpreter, args []string) interp.Code{
	"trimleft":        strTrimLeft,
	"trimright":       strTrimRight,
	"trim":            strTrim,
	"length":          strLength,
	"toupper":         strToUpper,
	"tolower":         strToLower,
	"reverse":         strReverse,
	"ordinal":         strOrdinal,
	"char":            strChar,
	"dec2hex":         strDec2Hex,
	"hex2dec":         strHex2Dec,
	"hash":            strHash,
	"equal":           strEqual,
	"compare":         strCompare,
	"compare-no-case": strCompareNoCase,
	"index":           strIndex,
	"match":           strMatch,
	"repeat":          strRepeat,
	"first":           strFirst,
	"range":           strRange,
	"is":              strIs,
}

func strTrimLeft(i *interp.Interpreter, args []string) interp.Code {
	if len(args) < 1 || len(args) > 2 {
		return i.FailArity(1, append([]string{"string", "trimleft"}, args...))
	}
	class := " \t\n\r"
	if len(args) == 2 {
		class = args[1]
	}
	return i.SetResultString(strings.TrimLeft(args[0], class))
}

func strTrimRight(i *interp.Interpreter, args []string) interp.Code {
	if len(args) < 1 || len(args) > 2 {
		return i.FailArity(1, append([]string{"string", "trimright"}, args...))
	}
	class := " \t\n\r"
	if len(args) == 2 {
		class = args[1]
	}
	return i.SetResultString(strings.TrimRight(args[0], class))
}

func strTrim(i *interp.Interpreter, args []string) interp.Code {
	if len(args) < 1 || len(args) > 2 {
		return i.FailArity(1, append([]string{"string", "trim"}, args...))
	}
	class := " \t\n\r"
	if len(args) == 2 {
		class = args[1]
	}
	return i.SetResultString(strings.Trim(args[0], class))
}

func strLength(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 1 {
		return i.FailArity(1, append([]string{"string", "length"}, args...))
	}
	return i.SetResultInteger(int64(len(args[0])))
}

func strToUpper(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 1 {
		return i.FailArity(1, append([]string{"string", "toupper"}, args...))
	}
	return i.SetResultString(strings.ToUpper(args[0]))
}

func strToLower(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 1 {
		return i.FailArity(1, append([]string{"string", "tolower"}, args...))
	}
	return i.SetResultString(strings.ToLower(args[0]))
}

func strReverse(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 1 {
		return i.FailArity(1, append([]string{"string", "reverse"}, args...))
	}
	b := []byte(args[0])
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
	return i.SetResultString(string(b))
}

// strOrdinal returns the first byte's ordinal value, grounded on
// picolCommandString's "ord" case.
func strOrdinal(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 1 || args[0] == "" {
		return i.FailArity(1, append([]string{"string", "ordinal"}, args...))
	}
	return i.SetResultInteger(int64(args[0][0]))
}

// strChar converts an integer to a one-character string, grounded on
// picolCommandString's "char" case.
func strChar(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 1 {
		return i.FailArity(1, append([]string{"string", "char"}, args...))
	}
	v, err := parseInt(args[0])
	if err != nil {
		return i.Fail(ifaceerr.KindType, "%s", err)
	}
	return i.SetResultString(string([]byte{byte(v)}))
}

func strDec2Hex(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 1 {
		return i.FailArity(1, append([]string{"string", "dec2hex"}, args...))
	}
	v, err := parseInt(args[0])
	if err != nil {
		return i.Fail(ifaceerr.KindType, "%s", err)
	}
	return i.SetResultString(numconv.FormatBaseN(v, 16))
}

func strHex2Dec(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 1 {
		return i.FailArity(1, append([]string{"string", "hex2dec"}, args...))
	}
	v, err := numconv.ParseBaseN(args[0], 16)
	if err != nil {
		return i.Fail(ifaceerr.KindType, "%s", err)
	}
	return i.SetResultInteger(v)
}

// strHash computes the command table's DJB2 hash, grounded on
// picolCommandString's "hash" case sharing picolHashString.
func strHash(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 1 {
		return i.FailArity(1, append([]string{"string", "hash"}, args...))
	}
	return i.SetResultInteger(int64(numconv.DJB2(args[0])))
}

func strEqual(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 2 {
		return i.FailArity(2, append([]string{"string", "equal"}, args...))
	}
	if args[0] == args[1] {
		return i.SetResultInteger(1)
	}
	return i.SetResultInteger(0)
}

func strCompare(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 2 {
		return i.FailArity(2, append([]string{"string", "compare"}, args...))
	}
	return i.SetResultInteger(int64(collateCompare(args[0], args[1], false)))
}

func strCompareNoCase(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 2 {
		return i.FailArity(2, append([]string{"string", "compare-no-case"}, args...))
	}
	return i.SetResultInteger(int64(collateCompare(args[0], args[1], true)))
}

// collateCompare compares two strings with a locale-aware collator,
// grounded on go-dws/internal/interp/builtins_strings_compare.go: English
// collation, falling back to strings.Compare only if the collator itself
// is unavailable (language.Parse never fails for the fixed "en" tag, but
// the fallback mirrors the teacher's defensive language.Parse/English
// pattern for the case a future locale parameter is added).
func collateCompare(a, b string, ignoreCase bool) int {
	tag, err := language.Parse("en")
	if err != nil {
		tag = language.English
	}
	var col *collate.Collator
	if ignoreCase {
		col = collate.New(tag, collate.IgnoreCase)
	} else {
		col = collate.New(tag)
	}
	if col == nil {
		return strings.Compare(a, b)
	}
	return col.CompareString(a, b)
}

func strIndex(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 2 {
		return i.FailArity(2, append([]string{"string", "index"}, args...))
	}
	idx, err := parseInt(args[1])
	if err != nil {
		return i.Fail(ifaceerr.KindType, "%s", err)
	}
	if idx < 0 || int(idx) >= len(args[0]) {
		return i.SetResultEmpty()
	}
	return i.SetResultString(string(args[0][idx]))
}

// strMatch implements glob matching (`*`, `?`, `%`-escape) via globMatch,
// grounded on original_source/pickle.c's recursive match().
func strMatch(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 2 {
		return i.FailArity(2, append([]string{"string", "match"}, args...))
	}
	ok, err := globMatch(args[0], args[1], 0)
	if err != nil {
		return i.Fail(ifaceerr.KindResource, "%s", err)
	}
	if ok {
		return i.SetResultInteger(1)
	}
	return i.SetResultInteger(0)
}

func strRepeat(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 2 {
		return i.FailArity(2, append([]string{"string", "repeat"}, args...))
	}
	n, err := parseInt(args[1])
	if err != nil {
		return i.Fail(ifaceerr.KindType, "%s", err)
	}
	if n < 0 {
		return i.Fail(ifaceerr.KindRange, "repeat count must be non-negative")
	}
	return i.SetResultString(strings.Repeat(args[0], int(n)))
}

func strFirst(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 2 {
		return i.FailArity(2, append([]string{"string", "first"}, args...))
	}
	return i.SetResultInteger(int64(strings.Index(args[1], args[0])))
}

func strRange(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 3 {
		return i.FailArity(3, append([]string{"string", "range"}, args...))
	}
	first, err := parseInt(args[1])
	if err != nil {
		return i.Fail(ifaceerr.KindType, "%s", err)
	}
	last, err := parseInt(args[2])
	if err != nil {
		return i.Fail(ifaceerr.KindType, "%s", err)
	}
	s := args[0]
	if first < 0 {
		first = 0
	}
	if last >= int64(len(s)) {
		last = int64(len(s)) - 1
	}
	if first > last || first >= int64(len(s)) {
		return i.SetResultEmpty()
	}
	return i.SetResultString(s[first : last+1])
}

// strIs implements `string is <class> str`, grounded on
// picolCommandString's "is" case.
func strIs(i *interp.Interpreter, args []string) interp.Code {
	if len(args) != 2 {
		return i.FailArity(2, append([]string{"string", "is"}, args...))
	}
	class, s := args[0], args[1]
	pred, ok := isClasses[class]
	if !ok {
		return i.Fail(ifaceerr.KindName, "No such class for 'string is': %s", class)
	}
	if pred(s) {
		return i.SetResultInteger(1)
	}
	return i.SetResultInteger(0)
}

var isClasses = map[string]func(string) bool{
	"alnum":    func(s string) bool { return allRunes(s, unicode.IsLetter, unicode.IsDigit) },
	"alpha":    func(s string) bool { return allRunes(s, unicode.IsLetter) },
	"digit":    func(s string) bool { return allRunes(s, unicode.IsDigit) },
	"graph":    func(s string) bool { return allRunes(s, unicode.IsGraphic) },
	"lower":    func(s string) bool { return allRunes(s, unicode.IsLower) },
	"print":    func(s string) bool { return allRunes(s, unicode.IsPrint) },
	"punct":    func(s string) bool { return allRunes(s, unicode.IsPunct) },
	"space":    func(s string) bool { return allRunes(s, unicode.IsSpace) },
	"upper":    func(s string) bool { return allRunes(s, unicode.IsUpper) },
	"xdigit":   func(s string) bool { return allRunes(s, isHexDigitRune) },
	"ascii":    func(s string) bool { return allRunes(s, func(r rune) bool { return r < 128 }) },
	"control":  func(s string) bool { return allRunes(s, unicode.IsControl) },
	"wordchar": func(s string) bool { return allRunes(s, unicode.IsLetter, unicode.IsDigit, func(r rune) bool { return r == '_' }) },
	"true":     func(s string) bool { return isTruthLiteral(s, true) },
	"false":    func(s string) bool { return isTruthLiteral(s, false) },
	"boolean":  func(s string) bool { return isTruthLiteral(s, true) || isTruthLiteral(s, false) },
	"integer":  func(s string) bool { _, err := parseInt(s); return err == nil },
}

func allRunes(s string, preds ...func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		matched := false
		for _, p := range preds {
			if p(r) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func isHexDigitRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isTruthLiteral(s string, want bool) bool {
	s = strings.ToLower(s)
	trueWords := []string{"1", "true", "yes", "on"}
	falseWords := []string{"0", "false", "no", "off"}
	words := falseWords
	if want {
		words = trueWords
	}
	for _, w := range words {
		if s == w {
			return true
		}
	}
	return false
}
