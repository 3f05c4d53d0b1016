package domain

import "time"

// Role represents a user role in the system
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleMember   Role = "MEMBER"
	RoleEmployer Role = "EMPLOYER"
)

// User represents the authenticated user's profile as returned by the backend
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// EmploymentStatus represents a member's employment situation
type EmploymentStatus string

const (
	Employed     EmploymentStatus = "EMPLOYED"
	SelfEmployed EmploymentStatus = "SELF_EMPLOYED"
	Unemployed   EmploymentStatus = "UNEMPLOYED"
	Retired      EmploymentStatus = "RETIRED"
)

// AccountType represents the kind of pension account
type AccountType string

const (
	AccountIndividual AccountType = "INDIVIDUAL"
	AccountCorporate  AccountType = "CORPORATE"
	AccountGovernment AccountType = "GOVERNMENT"
)

// AccountStatus represents the lifecycle state of a member account
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountInactive  AccountStatus = "INACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountClosed    AccountStatus = "CLOSED"
)

// Member represents a pension scheme member
type Member struct {
	ID                 int64            `json:"id"`
	FirstName          string           `json:"firstName"`
	LastName           string           `json:"lastName"`
	Email              string           `json:"email"`
	PhoneNumber        string           `json:"phoneNumber"`
	DateOfBirth        string           `json:"dateOfBirth"`
	Gender             string           `json:"gender"`
	Address            string           `json:"address"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Country            string           `json:"country"`
	PostalCode         string           `json:"postalCode"`
	EmploymentStatus   EmploymentStatus `json:"employmentStatus"`
	AccountType        AccountType      `json:"accountType"`
	AccountStatus      AccountStatus    `json:"accountStatus"`
	EnrollmentDate     string           `json:"enrollmentDate"`
	TotalContributions float64          `json:"totalContributions"`
	AvailableBalance   float64          `json:"availableBalance"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// ContributionType represents the origin of a contribution
type ContributionType string

const (
	ContributionRegular            ContributionType = "REGULAR"
	ContributionVoluntary          ContributionType = "VOLUNTARY"
	ContributionEmployer           ContributionType = "EMPLOYER"
	ContributionGovernmentMatching ContributionType = "GOVERNMENT_MATCHING"
)

// ContributionStatus represents the settlement state of a contribution
type ContributionStatus string

const (
	ContributionPending   ContributionStatus = "PENDING"
	ContributionCompleted ContributionStatus = "COMPLETED"
	ContributionFailed    ContributionStatus = "FAILED"
	ContributionReversed  ContributionStatus = "REVERSED"
)

// Contribution represents a single pension contribution
type Contribution struct {
	ID                   int64              `json:"id"`
	MemberID             int64              `json:"memberId"`
	MemberName           string             `json:"memberName"`
	Amount               float64            `json:"amount"`
	ContributionType     ContributionType   `json:"contributionType"`
	PaymentMethod        string             `json:"paymentMethod"`
	TransactionReference string             `json:"transactionReference"`
	ContributionDate     string             `json:"contributionDate"`
	Status               ContributionStatus `json:"status"`
	Description          string             `json:"description"`
	CreatedAt            time.Time          `json:"createdAt"`
}

// ClaimType represents the reason a benefit claim was raised
type ClaimType string

const (
	ClaimRetirement ClaimType = "RETIREMENT"
	ClaimWithdrawal ClaimType = "WITHDRAWAL"
	ClaimTemporary  ClaimType = "TEMPORARY"
	ClaimDisability ClaimType = "DISABILITY"
	ClaimDeath      ClaimType = "DEATH"
)

// ClaimStatus represents the review state of a benefit claim.
// Approve/reject are only legal while the claim is still PENDING;
// the backend enforces this and answers 422 otherwise.
type ClaimStatus string

const (
	ClaimPending     ClaimStatus = "PENDING"
	ClaimUnderReview ClaimStatus = "UNDER_REVIEW"
	ClaimApproved    ClaimStatus = "APPROVED"
	ClaimRejected    ClaimStatus = "REJECTED"
	ClaimPaid        ClaimStatus = "PAID"
	ClaimCancelled   ClaimStatus = "CANCELLED"
)

// BenefitClaim represents a benefit claim raised by a member
type BenefitClaim struct {
	ID                  int64       `json:"id"`
	MemberID            int64       `json:"memberId"`
	MemberName          string      `json:"memberName"`
	ClaimType           ClaimType   `json:"claimType"`
	RequestedAmount     float64     `json:"requestedAmount"`
	ApprovedAmount      float64     `json:"approvedAmount"`
	Status              ClaimStatus `json:"status"`
	Reason              string      `json:"reason"`
	SupportingDocuments string      `json:"supportingDocuments"`
	SubmissionDate      string      `json:"submissionDate"`
	ReviewDate          string      `json:"reviewDate,omitempty"`
	ReviewedBy          string      `json:"reviewedBy,omitempty"`
	ReviewComments      string      `json:"reviewComments,omitempty"`
	PaymentDate         string      `json:"paymentDate,omitempty"`
	PaymentReference    string      `json:"paymentReference,omitempty"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}

// Gateway represents a supported payment gateway
type Gateway string

const (
	GatewayPaystack    Gateway = "PAYSTACK"
	GatewayFlutterwave Gateway = "FLUTTERWAVE"
)

// PaymentStatus represents the settlement state of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentSuccess   PaymentStatus = "SUCCESS"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// Payment represents a gateway payment transaction
type Payment struct {
	ID                   int64         `json:"id"`
	MemberID             int64         `json:"memberId"`
	Amount               float64       `json:"amount"`
	PaymentMethod        string        `json:"paymentMethod"`
	PaymentGateway       Gateway       `json:"paymentGateway"`
	TransactionReference string        `json:"transactionReference"`
	Status               PaymentStatus `json:"status"`
	Metadata             string        `json:"metadata"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// ReportType represents the subject of a generated report
type ReportType string

const (
	ReportMemberSummary        ReportType = "MEMBER_SUMMARY"
	ReportContributionAnalysis ReportType = "CONTRIBUTION_ANALYSIS"
	ReportBenefitClaims        ReportType = "BENEFIT_CLAIMS"
	ReportFinancialOverview    ReportType = "FINANCIAL_OVERVIEW"
	ReportAuditTrail           ReportType = "AUDIT_TRAIL"
)

// FileFormat represents the output format of a report
type FileFormat string

const (
	FormatPDF   FileFormat = "PDF"
	FormatExcel FileFormat = "EXCEL"
	FormatCSV   FileFormat = "CSV"
)

// ReportStatus represents the generation state of a report
type ReportStatus string

const (
	ReportGenerating ReportStatus = "GENERATING"
	ReportCompleted  ReportStatus = "COMPLETED"
	ReportFailed     ReportStatus = "FAILED"
)

// Report represents a generated report and its file metadata
type Report struct {
	ID          int64        `json:"id"`
	ReportType  ReportType   `json:"reportType"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	FilePath    string       `json:"filePath"`
	FileFormat  FileFormat   `json:"fileFormat"`
	GeneratedBy string       `json:"generatedBy"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Parameters  string       `json:"parameters"`
	Status      ReportStatus `json:"status"`
}

// DashboardStats represents the aggregate figures on the admin dashboard
type DashboardStats struct {
	TotalMembers         int64   `json:"totalMembers"`
	ActiveMembers        int64   `json:"activeMembers"`
	TotalContributions   float64 `json:"totalContributions"`
	MonthlyContributions float64 `json:"monthlyContributions"`
	PendingClaims        int64   `json:"pendingClaims"`
	ApprovedClaims       int64   `json:"approvedClaims"`
	TotalBalance         float64 `json:"totalBalance"`
	MonthlyGrowth        float64 `json:"monthlyGrowth"`
}

// Dataset represents one series in a chart response
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
}

// ChartData represents labelled time-series data for dashboard charts
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// RiskLevel represents the ML model's risk classification
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// FraudDetectionResult represents the ML model's verdict on a transaction
type FraudDetectionResult struct {
	TransactionID string    `json:"transactionId"`
	MemberID      int64     `json:"memberId"`
	FraudScore    float64   `json:"fraudScore"`
	RiskLevel     RiskLevel `json:"riskLevel"`
	Flagged       bool      `json:"flagged"`
	Reasons       []string  `json:"reasons,omitempty"`
	EvaluatedAt   time.Time `json:"evaluatedAt"`
}

// RiskAssessment represents the ML model's standing risk profile for a member
type RiskAssessment struct {
	MemberID    int64     `json:"memberId"`
	RiskScore   float64   `json:"riskScore"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	Factors     []string  `json:"factors,omitempty"`
	AssessedAt  time.Time `json:"assessedAt"`
	NextReview  string    `json:"nextReview,omitempty"`
	Recommended string    `json:"recommendedAction,omitempty"`
}
