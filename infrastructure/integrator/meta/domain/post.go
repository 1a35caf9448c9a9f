package metadomain

// Post é um item de /{page-id}/posts
type Post struct {
	ID           any          `json:"id"`
	Message      any          `json:"message"`
	CreatedTime  any          `json:"created_time"`
	PermalinkURL any          `json:"permalink_url"`
	FullPicture  any          `json:"full_picture"`
	StatusType   any          `json:"status_type"`
	Likes        *Summarized  `json:"likes,omitempty"`
	Comments     *Summarized  `json:"comments,omitempty"`
	Shares       *ShareCount  `json:"shares,omitempty"`
	Attachments  *Attachments `json:"attachments,omitempty"`
}

// Summarized é o formato de likes.summary(true) e comments.summary(true)
type Summarized struct {
	Summary struct {
		TotalCount any `json:"total_count"`
	} `json:"summary"`
}

type ShareCount struct {
	Count any `json:"count"`
}

type Attachments struct {
	Data []struct {
		MediaType any `json:"media_type"`
		Type      any `json:"type"`
	} `json:"data"`
}

// PostFields são os campos solicitados na listagem de posts
const PostFields = "id,message,created_time,permalink_url,full_picture,status_type," +
	"attachments{media_type,type},likes.summary(true).limit(0),comments.summary(true).limit(0),shares"

// PageFields são os campos solicitados na leitura da página
const PageFields = "id,name,about,category,website,phone,fan_count,followers_count,picture{url}"
