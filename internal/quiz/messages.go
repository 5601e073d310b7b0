package quiz

import (
	"errors"
	"fmt"
)

// Errors returned by controller operations. None of them change state.
var (
	ErrNoData            = errors.New("no data")
	ErrNoDayData         = errors.New("no data for this day")
	ErrNoWrongAnswers    = errors.New("no wrong answers")
	ErrInvalidTransition = errors.New("invalid screen transition")
)

// User-facing texts.
const (
	MsgCorrect         = "정답입니다!"
	MsgCompletedTitle  = "연습 완료"
	MsgCompleted       = "모든 문제를 푸셨습니다!"
	MsgBackToMenu      = "메뉴로 돌아가기"
	MsgLoadFailedTitle = "오류"
	MsgLoadFailed      = "데이터를 불러오는 중 문제가 발생했습니다."
	MsgQuestionPrompt  = "다음 단어의 뜻은 무엇일까요?"
)

// WrongMessage reveals the correct meaning after a wrong answer.
func WrongMessage(meaning string) string {
	return fmt.Sprintf("틀렸습니다. 정답은 '%s' 입니다.", meaning)
}

// Alert maps a controller error to an alert title and body.
func Alert(err error) (title, body string) {
	switch {
	case errors.Is(err, ErrNoDayData):
		return "데이터 없음", "선택한 날짜에 해당하는 데이터가 없습니다."
	case errors.Is(err, ErrNoData):
		return "데이터 없음", "현재 데이터가 없습니다."
	case errors.Is(err, ErrNoWrongAnswers):
		return "오답 없음", "현재 오답이 없습니다."
	default:
		return MsgLoadFailedTitle, err.Error()
	}
}
