package generator

import (
	"context"
	"errors"
	"strings"
)

// Agent runs one full generation: build the platform prompt, call the model,
// post-process the reply into a Post.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// Generate produces a finished post for req. Regeneration is the same call
// again; there is no revision state to carry over.
func (a *Agent) Generate(ctx context.Context, req Request) (Post, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return Post{}, errors.New("topic is required")
	}

	prompt := BuildPrompt(req, SplitKeywords(req.Keywords))
	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return Post{}, err
	}
	return PostProcess(raw, req), nil
}
