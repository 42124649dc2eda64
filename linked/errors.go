package linked

import "errors"

// ErrEmptyStack indicates Pop or Peek on a stack with no elements.
var ErrEmptyStack = errors.New("linked: stack is empty")
