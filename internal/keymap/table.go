package keymap

func glyph(visual, internal string) Mapping {
	return Mapping{Visual: visual, Internal: internal}
}

func op(visual, internal string) Mapping {
	return Mapping{Visual: visual, Internal: internal, Continues: true}
}

func same(s string) Mapping {
	return Mapping{Visual: s, Internal: s}
}

var baseLayer = map[Token]Mapping{
	Key0:  same("0"),
	Key1:  same("1"),
	Key2:  same("2"),
	Key3:  same("3"),
	Key4:  same("4"),
	Key5:  same("5"),
	Key6:  same("6"),
	Key7:  same("7"),
	Key8:  same("8"),
	Key9:  same("9"),
	Dot:   same("."),
	Comma: same(","),

	Plus:     op("+", "+"),
	Minus:    op("-", "-"),
	Multiply: op("×", "*"),
	Divide:   op("÷", "/"),
	Caret:    op("^", "^"),
	Power:    op("^(", "^("),
	Square:   op("²", "^2"),
	Cube:     op("³", "^3"),
	Recip:    op("⁻¹", "^(-1)"),
	LParen:   op("(", "("),
	RParen:   op(")", ")"),

	Sin:      glyph("sin(", "sin("),
	Cos:      glyph("cos(", "cos("),
	Tan:      glyph("tan(", "tan("),
	Log:      glyph("log(", "log10("),
	Ln:       glyph("ln(", "log("),
	Sqrt:     glyph("√(", "sqrt("),
	Abs:      glyph("Abs(", "abs("),
	Exp:      glyph("×10", "*10^"),
	Answer:   glyph("Ans", "Ans"),
	Integral: glyph("∫(", "integrate("),

	SD:    {Action: ToggleFraction},
	Sto:   {Action: Store},
	MPlus: {Action: MemoryAdd},
}

// The P and C internal tokens are infix markers; the rewriter turns
// "nPr" into permutations(n, r) and "nCr" into combinations(n, r).
var shiftLayer = map[Token]Mapping{
	Sin:      glyph("sin⁻¹(", "asin("),
	Cos:      glyph("cos⁻¹(", "acos("),
	Tan:      glyph("tan⁻¹(", "atan("),
	Ln:       glyph("e^", "exp("),
	Log:      glyph("10^", "10^"),
	Sqrt:     glyph("³√(", "cbrt("),
	Square:   op("³", "^3"),
	Multiply: op("P", "P"),
	Divide:   op("C", "C"),
	RParen:   same("X"),
	Exp:      glyph("π", "pi"),
	Answer:   op("%", "/100"),
	Integral: glyph("d/dx(", "deriv("),
	MPlus:    {Action: MemorySubtract},
}

var alphaLayer = map[Token]Mapping{
	RParen: same("X"),
	SD:     same("Y"),
	MPlus:  same("M"),
	Key7:   same("A"),
	Key8:   same("B"),
	Key9:   same("C"),
	Key4:   same("D"),
	Key5:   same("E"),
	Key6:   same("F"),
}

// In MATRIX and VECTOR modes the first four letter keys name the stored
// matrices and vectors instead of the scalar registers.
var modeAlphaLayer = map[Mode]map[Token]Mapping{
	Matrix: {
		Key7: same("MatA"),
		Key8: same("MatB"),
		Key9: same("MatC"),
		Key4: same("MatD"),
	},
	Vector: {
		Key7: same("VctA"),
		Key8: same("VctB"),
		Key9: same("VctC"),
		Key4: same("VctD"),
	},
}
