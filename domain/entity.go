package domain

type EntityType string

const (
	EntityTypeWorkProgram EntityType = "work_program"
	EntityTypeEvent       EntityType = "event"
	EntityTypeFinance     EntityType = "finance"
	EntityTypeDocument    EntityType = "document"
	EntityTypeLetter      EntityType = "letter"
	EntityTypeArticle     EntityType = "article"
)

var AllEntityTypes = []EntityType{
	EntityTypeWorkProgram,
	EntityTypeEvent,
	EntityTypeFinance,
	EntityTypeDocument,
	EntityTypeLetter,
	EntityTypeArticle,
}

func (t EntityType) IsValid() bool {
	for _, et := range AllEntityTypes {
		if t == et {
			return true
		}
	}
	return false
}
