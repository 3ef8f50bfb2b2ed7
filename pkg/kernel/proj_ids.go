package kernel

type SeekerID string

func NewSeekerID(id string) SeekerID { return SeekerID(id) }
func (s SeekerID) String() string    { return string(s) }
func (s SeekerID) IsEmpty() bool     { return string(s) == "" }

type CompanyID string

func NewCompanyID(id string) CompanyID { return CompanyID(id) }
func (c CompanyID) String() string     { return string(c) }
func (c CompanyID) IsEmpty() bool      { return string(c) == "" }

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (j JobID) String() string { return string(j) }
func (j JobID) IsEmpty() bool  { return string(j) == "" }

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) String() string         { return string(a) }
func (a ApplicationID) IsEmpty() bool          { return string(a) == "" }

type InterviewID string

func NewInterviewID(id string) InterviewID { return InterviewID(id) }
func (i InterviewID) String() string       { return string(i) }
func (i InterviewID) IsEmpty() bool        { return string(i) == "" }

type ChatID string

func NewChatID(id string) ChatID { return ChatID(id) }
func (c ChatID) String() string  { return string(c) }
func (c ChatID) IsEmpty() bool   { return string(c) == "" }
