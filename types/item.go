package types

type Action string

const (
	PushHead    Action = "PushHead"
	PushTail    Action = "PushTail"
	PopHead     Action = "PopHead"
	PopTail     Action = "PopTail"
	InsertAfter Action = "InsertAfter"
	RemoveAfter Action = "RemoveAfter"
	GetList     Action = "GetList"
	GetAllLists Action = "GetAllLists"
	RemoveList  Action = "RemoveList"
)

// Item is a list command as it travels through the queue.
type Item struct {
	Action   Action `json:"action"`
	List     string `json:"list,omitempty"`
	Value    string `json:"value,omitempty"`
	Position int    `json:"position,omitempty"`
}
