package model

// EventKind Вид входящего события от чат-моста
type EventKind int

const (
	EventUnknown EventKind = iota
	EventStart
	EventSelectStake
	EventSelectTarget
	EventSpin
	EventCancel
)

var eventKindNames = map[EventKind]string{
	EventStart:        "start",
	EventSelectStake:  "stake",
	EventSelectTarget: "target",
	EventSpin:         "spin",
	EventCancel:       "cancel",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseEventKind разбирает имя события из запроса
func ParseEventKind(s string) (EventKind, bool) {
	for k, name := range eventKindNames {
		if name == s {
			return k, true
		}
	}
	return EventUnknown, false
}

// Event Входящее событие (команда или нажатие кнопки)
type Event struct {
	SessionID string
	Kind      EventKind
	Stake     int // для EventSelectStake
	Target    Bet // для EventSelectTarget
}

// Option Вариант, который мост рендерит кнопкой.
// Event - готовое событие, которое нужно прислать при нажатии.
type Option struct {
	Label string
	Row   int
	Event Event
}

// Directive Ответ машины состояний для чат-моста
type Directive struct {
	Text      string
	NextStage Stage
	Options   []Option
	Outcome   *SpinOutcome // заполнен только после спина
}
