package entities

type Status string

const (
	StatusRequested Status = "requested"
	StatusPending   Status = "pending"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

var AllStatuses = []Status{
	StatusRequested,
	StatusPending,
	StatusReady,
	StatusCompleted,
	StatusRejected,
	StatusCancelled,
}

// ActiveStatuses are the statuses a customer is still waiting on.
var ActiveStatuses = []Status{StatusRequested, StatusPending, StatusReady}

// Transition is one edge of the order status machine together with the
// role allowed to trigger it.
type Transition struct {
	From  Status
	To    Status
	Actor Role
}

// Transitions is the order status flow as code. Admin overrides are not
// listed here, they bypass the table entirely.
var Transitions = []Transition{
	{From: StatusRequested, To: StatusPending, Actor: RoleSeller},
	{From: StatusRequested, To: StatusRejected, Actor: RoleSeller},
	{From: StatusRequested, To: StatusRejected, Actor: RoleSystem},
	{From: StatusRequested, To: StatusCancelled, Actor: RoleBuyer},
	{From: StatusPending, To: StatusReady, Actor: RoleSeller},
	{From: StatusPending, To: StatusCancelled, Actor: RoleSeller},
	{From: StatusReady, To: StatusCompleted, Actor: RoleBuyer},
}

func CanTransition(from, to Status) bool {
	for _, t := range Transitions {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

func CanTrigger(from, to Status, actor Role) bool {
	for _, t := range Transitions {
		if t.From == from && t.To == to && t.Actor == actor {
			return true
		}
	}
	return false
}

func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected || s == StatusCancelled
}

func (s Status) String() string {
	return string(s)
}
