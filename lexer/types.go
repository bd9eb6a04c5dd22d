package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid     TokenType = iota
	TokenKeyword               // Reserved word: "class", "let", ...
	TokenSymbol                // Single character symbol: "{", "+", ...
	TokenIdentifier            // Letters, digits and underscore, not starting with a digit
	TokenIntConst              // Decimal integer in 0..32767
	TokenStringConst           // Double quoted text without the quotes
	TokenEOF                   // End of file
)

var tokenNames = map[TokenType]string{
	TokenInvalid:     "invalid",
	TokenKeyword:     "keyword",
	TokenSymbol:      "symbol",
	TokenIdentifier:  "identifier",
	TokenIntConst:    "integerConstant",
	TokenStringConst: "stringConstant",
	TokenEOF:         "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// Keyword is one of the reserved words of the language
type Keyword string

// Reserved words
const (
	KeywordClass       Keyword = "class"
	KeywordConstructor Keyword = "constructor"
	KeywordFunction    Keyword = "function"
	KeywordMethod      Keyword = "method"
	KeywordField       Keyword = "field"
	KeywordStatic      Keyword = "static"
	KeywordVar         Keyword = "var"
	KeywordInt         Keyword = "int"
	KeywordChar        Keyword = "char"
	KeywordBoolean     Keyword = "boolean"
	KeywordVoid        Keyword = "void"
	KeywordTrue        Keyword = "true"
	KeywordFalse       Keyword = "false"
	KeywordNull        Keyword = "null"
	KeywordThis        Keyword = "this"
	KeywordLet         Keyword = "let"
	KeywordDo          Keyword = "do"
	KeywordIf          Keyword = "if"
	KeywordElse        Keyword = "else"
	KeywordWhile       Keyword = "while"
	KeywordReturn      Keyword = "return"
)

var keywords = map[string]Keyword{}

func init() {
	for _, kw := range []Keyword{
		KeywordClass, KeywordConstructor, KeywordFunction, KeywordMethod,
		KeywordField, KeywordStatic, KeywordVar,
		KeywordInt, KeywordChar, KeywordBoolean, KeywordVoid,
		KeywordTrue, KeywordFalse, KeywordNull, KeywordThis,
		KeywordLet, KeywordDo, KeywordIf, KeywordElse, KeywordWhile, KeywordReturn,
	} {
		keywords[string(kw)] = kw
	}
}

// LookupKeyword returns the keyword named by s, if any.
func LookupKeyword(s string) (Keyword, bool) {
	kw, ok := keywords[s]
	return kw, ok
}

// MaxIntConst is the largest integer constant the language accepts.
const MaxIntConst = 32767

var (
	symbolChars     = []rune("{}()[].,;+-*/&|<>=~")
	whitespaceChars = []rune(" \f\t\r\n")
	letterChars     = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_")
	digitChars      = []rune("0123456789")
)

func isOneOf(set []rune) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range set {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isSymbol     = isOneOf(symbolChars)
	isWhitespace = isOneOf(whitespaceChars)
	isLetter     = isOneOf(letterChars)
	isDigit      = isOneOf(digitChars)
)

func isWord(r rune) bool {
	return isLetter(r) || isDigit(r)
}
