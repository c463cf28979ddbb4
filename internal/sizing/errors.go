package sizing

import (
	"fmt"
	"strings"
)

type ErrUnknownRoomType struct {
	error
}

func NewErrUnknownRoomType(t RoomType) *ErrUnknownRoomType {
	return &ErrUnknownRoomType{fmt.Errorf("unknown room type %q", string(t))}
}

// ErrInvalidInput lists every problem found in the rooms and appliances given to the Engine.
type ErrInvalidInput struct {
	error
	Problems []string
}

func NewErrInvalidInput(problems []string) *ErrInvalidInput {
	return &ErrInvalidInput{
		error:    fmt.Errorf("invalid input: %s", strings.Join(problems, "; ")),
		Problems: problems,
	}
}
