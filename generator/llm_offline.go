package generator

import "context"

const (
	offlineNotice    = "(테스트 모드) OpenAI 키가 없어 규칙 기반 임시 출력입니다."
	offlineEchoRunes = 1800
)

// OfflineLLM is the no-credentials fallback. It never calls out; it labels the
// output as test mode and echoes the head of the prompt so the rest of the
// pipeline can run without a key.
type OfflineLLM struct{}

func (OfflineLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	echo := prompt.User
	if r := []rune(echo); len(r) > offlineEchoRunes {
		echo = string(r[:offlineEchoRunes])
	}
	return offlineNotice + "\n\n" + echo, nil
}
