package token

// wrapper function variables, tests swap these to fake token handling
var (
	GenerateJWTFunc = GenerateJWT
	ParseJWTFunc    = ParseJWT
)
