package types

// DTO field names follow the frontend contract, which is why several ids are
// sent twice under different keys and note content appears under both
// "noteContent" and "content".

const TimeLayout = "2006-01-02 15:04:05"

type NoteDTO struct {
	ID            int     `json:"noteKey"`
	Key           int     `json:"key"`
	Title         string  `json:"noteTitle"`
	Content       string  `json:"noteContent"`
	ContentRaw    string  `json:"content"`
	Description   string  `json:"description"`
	Cover         string  `json:"cover"`
	CreatedAt     string  `json:"createTime"`
	UpdatedAt     string  `json:"updateTime"`
	IsTop         int     `json:"isTop"`
	Status        string  `json:"status"`
	Category      *string `json:"noteCategory"`
	CategoryTitle *string `json:"categoryTitle"`
	IsPublic      bool    `json:"is_public"`
	Tags          string  `json:"noteTags"`
}

func NewNoteDTO(n Note) NoteDTO {
	var catName *string
	if n.Category != nil {
		catName = &n.Category.Name
	}
	return NoteDTO{
		ID:            n.ID,
		Key:           n.ID,
		Title:         n.Title,
		Content:       n.Content,
		ContentRaw:    n.Content,
		Description:   n.Description,
		Cover:         n.Cover,
		CreatedAt:     n.CreatedAt.Format(TimeLayout),
		UpdatedAt:     n.UpdatedAt.Format(TimeLayout),
		IsTop:         n.IsTop,
		Status:        n.Status,
		Category:      catName,
		CategoryTitle: catName,
		IsPublic:      n.IsPublic,
		Tags:          n.Tags,
	}
}

func NewNoteDTOs(notes []Note) []NoteDTO {
	dtos := make([]NoteDTO, 0, len(notes))
	for _, n := range notes {
		dtos = append(dtos, NewNoteDTO(n))
	}
	return dtos
}

type CategoryDTO struct {
	ID        int    `json:"categoryKey"`
	Key       int    `json:"key"`
	Name      string `json:"categoryTitle"`
	PathName  string `json:"pathName"`
	Introduce string `json:"introduce"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	NoteCount int64  `json:"noteCount"`
}

func NewCategoryDTO(c Category, noteCount int64) CategoryDTO {
	return CategoryDTO{
		ID:        c.ID,
		Key:       c.ID,
		Name:      c.Name,
		PathName:  c.PathName,
		Introduce: c.Introduce,
		Icon:      c.Icon,
		Color:     c.Color,
		NoteCount: noteCount,
	}
}

type TagOneDTO struct {
	ID    int    `json:"tagKey"`
	Title string `json:"title"`
	Color string `json:"color"`
	Level int    `json:"level"`
}

func NewTagOneDTO(t TagOne) TagOneDTO {
	return TagOneDTO{ID: t.ID, Title: t.Name, Color: t.Color, Level: 1}
}

type TagTwoDTO struct {
	ID        int    `json:"tagKey"`
	Title     string `json:"title"`
	Color     string `json:"color"`
	Level     int    `json:"level"`
	FatherTag string `json:"fatherTag"`
}

type FriendDTO struct {
	ID          int    `json:"friendKey"`
	Name        string `json:"siteName"`
	URL         string `json:"siteUrl"`
	Avatar      string `json:"avatar"`
	Description string `json:"description"`
	Status      int    `json:"status"`
}

func NewFriendDTO(f Friend) FriendDTO {
	return FriendDTO{
		ID:          f.ID,
		Name:        f.Name,
		URL:         f.Link,
		Avatar:      f.Avatar,
		Description: f.Description,
		Status:      f.Status,
	}
}

type TalkDTO struct {
	ID        int    `json:"talkKey"`
	Title     string `json:"talkTitle"`
	Content   string `json:"content"`
	CreatedAt string `json:"createTime"`
	UpdatedAt string `json:"updateTime"`
}

func NewTalkDTO(t Talk) TalkDTO {
	return TalkDTO{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		CreatedAt: t.CreatedAt.Format(TimeLayout),
		UpdatedAt: t.UpdatedAt.Format(TimeLayout),
	}
}
