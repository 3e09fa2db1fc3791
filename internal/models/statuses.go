package models

type UserRole string
type CompanyStage string
type NeedCategory string
type Urgency string
type MatchStatus string
type FeedbackType string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	CompanyStageIdea       CompanyStage = "idea"
	CompanyStageMVP        CompanyStage = "mvp"
	CompanyStageEarlyStage CompanyStage = "early_stage"
	CompanyStageGrowth     CompanyStage = "growth"
	CompanyStageScale      CompanyStage = "scale"

	NeedCategoryFunding      NeedCategory = "funding"
	NeedCategoryMentorship   NeedCategory = "mentorship"
	NeedCategoryTalent       NeedCategory = "talent"
	NeedCategoryPartnerships NeedCategory = "partnerships"
	NeedCategoryResources    NeedCategory = "resources"
	NeedCategoryCustomers    NeedCategory = "customers"
	NeedCategoryAdvisors     NeedCategory = "advisors"

	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"

	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"

	FeedbackTypePlatform FeedbackType = "platform"
	FeedbackTypeMatch    FeedbackType = "match"
)

// Подписи для визарда онбординга
var CompanyStageLabels = map[CompanyStage]string{
	CompanyStageIdea:       "Idea Stage",
	CompanyStageMVP:        "MVP/Prototype",
	CompanyStageEarlyStage: "Early Stage",
	CompanyStageGrowth:     "Growth Stage",
	CompanyStageScale:      "Scale Stage",
}

var NeedCategoryLabels = map[NeedCategory]string{
	NeedCategoryFunding:      "Funding & Investment",
	NeedCategoryMentorship:   "Mentorship & Advice",
	NeedCategoryTalent:       "Talent & Hiring",
	NeedCategoryPartnerships: "Strategic Partnerships",
	NeedCategoryResources:    "Resources & Tools",
	NeedCategoryCustomers:    "Customer Acquisition",
	NeedCategoryAdvisors:     "Advisors & Board Members",
}

// Порядок важен для вывода вариантов клиенту
var (
	CompanyStages  = []CompanyStage{CompanyStageIdea, CompanyStageMVP, CompanyStageEarlyStage, CompanyStageGrowth, CompanyStageScale}
	NeedCategories = []NeedCategory{
		NeedCategoryFunding, NeedCategoryMentorship, NeedCategoryTalent, NeedCategoryPartnerships,
		NeedCategoryResources, NeedCategoryCustomers, NeedCategoryAdvisors,
	}
	Urgencies = []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}
)

// Категории возможностей шире категорий потребностей
var OpportunityCategories = []string{
	"funding", "mentorship", "talent", "partnerships", "resources", "customers", "advisors",
	"knowledge", "integrations", "other",
}

var OpportunityTypes = []string{"grant", "program", "competition", "job", "partnership", "resource"}

func (s CompanyStage) Valid() bool {
	_, ok := CompanyStageLabels[s]
	return ok
}

func (c NeedCategory) Valid() bool {
	_, ok := NeedCategoryLabels[c]
	return ok
}

// Label - подпись категории, для неизвестных значений сама категория
func (c NeedCategory) Label() string {
	if l, ok := NeedCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusRejected:
		return true
	}
	return false
}

func (t FeedbackType) Valid() bool {
	return t == FeedbackTypePlatform || t == FeedbackTypeMatch
}

// Industries - пространства Web3, которые предлагает онбординг
var Industries = []string{
	"DeFi (Decentralized Finance)",
	"NFTs & Digital Assets",
	"Web3 Infrastructure",
	"Blockchain Gaming",
	"DAOs & Governance",
	"Cross-chain & Interoperability",
	"Web3 Social",
	"Decentralized Identity",
	"Carbon Credits & ReFi",
	"Web3 Payments",
	"Decentralized Storage",
	"Web3 Analytics",
	"Metaverse & Virtual Worlds",
	"Web3 Education",
	"Other Web3/Blockchain",
}
