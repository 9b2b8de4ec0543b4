package generator

import (
	"fmt"
	"strings"
)

// Prompt is the message pair sent to the LLM.
type Prompt struct {
	System string
	User   string
}

const promptSystem = "지시된 구조를 그대로 지키고, 설명 없이 완성된 글만 출력한다."

const itemPromptTemplate = `너는 20년차 여성의류 쇼핑몰 CEO(미샵 대표)이며, 네이버/다음/구글 SEO에 강한 블로그 작가다.
플랫폼: %s
목표: [미샵] + 여성의류 검색에서 상위노출을 노리는 5,000자 내외 블로그 글.

[절대 규칙]
- 첫 문장은 반드시 "안녕하세요^^ 일상도 스타일도 미샵처럼 심플하게! 20년차 여성의류 쇼핑몰 미샵 대표입니다."
- 그 다음 문장에는 '시즌/날씨/시기' 인사말을 자연스럽게 추가.
- 각 문단의 시작은 반드시 "미샵 %s은(는) " 으로 시작.
- 문단 사이 구분선(--- 등) 금지. 대신 공감 유도 연결문장으로 자연스럽게 이어가라.
- 콜론 표기 시 "단어: 값"으로 한 칸 띄어쓰기.
- 제목에는 반드시 "[미샵]" 포함, 상위 키워드 1개 포함("%s"), 카테고리 키워드로 SEO 최적화.
- 말투: 대중적/캐주얼, 때로는 쇼핑호스트 톤, 때로는 오프라인 옷가게 사장님 톤.
- 해시태그는 맨 끝에 30개를 한 줄로.

[필수 문단 구성(순서 유지)]
1) 최상단 요약(3~5줄)
2) 이런 분들께 추천합니다(4050 체형/TPO) - 리스팅
3) 이럴 때 요긴해요 - 상황 리스팅
4) (자연스러운 타이틀) 디자인/핏이 주는 이점: 체형커버, 날씬해 보임 등
5) (자연스러운 타이틀) 소재/착용감이 주는 생활 속 이점: 구김, 편안함 등
6) (자연스러운 타이틀) 가격/가치 베네핏: 퀄리티 대비 합리적
7) 고객 후기 반응 요약: 후기 텍스트가 비어 있으면 이 문단은 아예 쓰지 말 것
8) 활용성 및 코디 제안(TPO 연결)
9) (자연스러운 타이틀) 이 아이템, 꼭 만나보세요(공감 CTA)
10) 아이템 사이즈 스펙 표(표 형태)
11) 사이즈 추천 표(체형별 추천)
12) 최하단 [요약] 3줄
13) 요약 다음 줄에 인용박스(>)로 필요성 공감 CTA
14) 마지막 줄: "일상도 스타일도 미샵처럼, 심플하게! MISHARP"
15) 해시태그 30개(필수 포함)

[입력 정보]
- 상품명: %s
- 상품 URL: %s
- 핵심 키워드(우선순위): %s
- 사용자 추가 메모/원고:
%s
- 사이즈 스펙(사용자 제공):
%s
- 후기(사용자 제공):
%s

[출력]
- 제목 1개
- 본문(위 구조)
- 맨 끝 해시태그 30개(한 줄)`

const generalPromptTemplate = `너는 %s SEO에 최적화된 블로그 글을 쓰는 전문가다.
분량: 약 5,000자.
키워드: %s (본문에 과하지 않게 자연스럽게 분산)

[글 시작 고정]
"안녕하세요, 000입니다. (시기적으로 적절한 인삿말) 오늘은 (%s)에 대해 얘기해볼까해요."

[필수 구성]
- 최상단 글요약(3~5줄)
- 일상적 공감 문제 제기/공감 유도
- 본문(문단별 소제목으로 구조화)
- 마지막 요약(3줄)
- 해시태그 30개(한 줄)
- 마지막 인사: "오늘 정보가 도움이 되었으면 합니다." 느낌의 창작 인사말

[입력 메모]
%s

[출력]
- 제목 1개
- 본문
- 해시태그 30개(한 줄)`

// BuildItemPrompt fills the MISHARP product template. The keyword list has
// already been parsed; when it is empty the topic stands in for it so the
// keyword slots in the template never read blank.
func BuildItemPrompt(req Request, keywords []string) Prompt {
	topic := strings.TrimSpace(req.Topic)
	kws := strings.Join(keywords, ", ")
	if kws == "" {
		kws = topic
	}
	user := fmt.Sprintf(itemPromptTemplate,
		req.Platform,
		topic,
		PrimaryKeyword(topic, keywords),
		topic,
		req.ProductURL,
		kws,
		req.Notes,
		req.SizeSpec,
		req.Reviews,
	)
	return Prompt{System: promptSystem, User: user}
}

// BuildGeneralPrompt fills the non-product template for general topic posts.
func BuildGeneralPrompt(req Request, keywords []string) Prompt {
	topic := strings.TrimSpace(req.Topic)
	kws := strings.Join(keywords, ", ")
	if kws == "" {
		kws = topic
	}
	user := fmt.Sprintf(generalPromptTemplate,
		req.Platform,
		kws,
		topic,
		req.Notes,
	)
	return Prompt{System: promptSystem, User: user}
}

// BuildPrompt picks the template by post type. Only the exact item label gets
// the product structure; anything else falls through to the general template.
func BuildPrompt(req Request, keywords []string) Prompt {
	if req.PostType == PostTypeItem {
		return BuildItemPrompt(req, keywords)
	}
	return BuildGeneralPrompt(req, keywords)
}
