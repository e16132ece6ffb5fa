package alphabet

import (
	"errors"
)

// Size is the number of letters the machine is wired for.
// Every permutation in the machine maps the index space [0, Size).
const Size = 26

var ErrInvalidCharacter = errors.New("character is outside of the machine's alphabet")

func Contains(num int) bool {
	return num >= 0 && num < Size
}

func CharToIndex(char rune) (int, error) {
	if char < 'a' || char > 'z' {
		return 0, ErrInvalidCharacter
	}
	return int(char - 'a'), nil
}

func IndexToChar(num int) (rune, error) {
	if !Contains(num) {
		return 0, ErrInvalidCharacter
	}
	return rune('a' + num), nil
}
