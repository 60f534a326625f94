package interfaces

import "context"

//go:generate mockgen -source=text_generator_interface.go -destination=mocks/text_generator_mock.go -package=mock_interfaces

// ITextGenerator turns a prompt into a short generated text.
type ITextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
