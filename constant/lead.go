package constant

const (
	LeadLevelOne   = "1"
	LeadLevelTwo   = "2"
	LeadLevelThree = "3"
)

const (
	DispositionAnswered   = "Answered"
	DispositionUnanswered = "Unanswered"
	DispositionCallback   = "Callback"
)

const (
	LeadTypeMobileServices = "Mobile services"
	LeadTypeOutsourcing    = "Outsourcing"
)

const (
	PlanStatusActive   = "active"
	PlanStatusInactive = "inactive"
)

// ProcessingIDLength is the size of the random external lead reference.
const ProcessingIDLength = 8

// OTPLength is the size of the password reset code.
const OTPLength = 6
