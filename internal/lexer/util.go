package lexer

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStartByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}
