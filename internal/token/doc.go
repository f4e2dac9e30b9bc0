// Package token defines lexical token kinds and trivia for the Ember compiler.
// Invariants:
//   - Token.Text is exactly the source text of the token.
//   - Token.Span matches Text exactly (Begin..End).
//   - 'let' is the only keyword; every other symbolic token is a single character.
//   - Whitespace and '//' comments never appear in the main token stream; they
//     are attached to the following token as leading Trivia.
//   - Characters the lexer does not recognize become one-character Unknown
//     tokens; deciding that they are invalid is the parser's job.
package token
