package kernel

type AccountID string

func NewAccountID(id string) AccountID { return AccountID(id) }
func (a AccountID) String() string     { return string(a) }
func (a AccountID) IsEmpty() bool      { return string(a) == "" }

// AccountType distinguishes the two actor classes on the platform
type AccountType string

const (
	AccountTypeSeeker  AccountType = "seeker"
	AccountTypeCompany AccountType = "company"
)

func (t AccountType) IsValid() bool {
	return t == AccountTypeSeeker || t == AccountTypeCompany
}

type EventID string

func NewEventID(id string) EventID { return EventID(id) }
func (e EventID) String() string   { return string(e) }
func (e EventID) IsEmpty() bool    { return string(e) == "" }
