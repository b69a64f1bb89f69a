package api

type Work struct {
	Id           string  `json:"id"`
	PublicId     string  `json:"publicId"`
	Title        string  `json:"title"`
	ProjectType  string  `json:"projectType"`
	FileName     string  `json:"fileName,omitempty"`
	FileHash     string  `json:"fileHash"`
	Description  string  `json:"description,omitempty"`
	Rights       *Rights `json:"rights,omitempty"`
	RightsDigest string  `json:"rightsDigest,omitempty"`
	AnchorStatus string  `json:"anchorStatus"`
	AnchorTxHash string  `json:"anchorTxHash,omitempty"`
	CreatedAt    int64   `json:"createdAt"`
}

// SubmitWorkRequest registers a file. Either FileHash (hex SHA-256, computed
// client side) or FileContent must be set; when both are, they must agree.
type SubmitWorkRequest struct {
	Title           string  `json:"title"`
	ProjectType     string  `json:"projectType"`
	FileName        string  `json:"fileName,omitempty"`
	FileHash        string  `json:"fileHash,omitempty"`
	FileContent     []byte  `json:"fileContent,omitempty"`
	Description     string  `json:"description,omitempty"`
	Rights          *Rights `json:"rights,omitempty"`
	RightsConfirmed bool    `json:"rightsConfirmed"`
}

type SubmitWorkResponse struct {
	Work *Work `json:"work"`
}

type GetWorkRequest struct {
	WorkId string `json:"workId"`
}

type GetWorkResponse struct {
	Work *Work `json:"work"`
}

type ListWorksRequest struct{}

type ListWorksResponse struct {
	Works []*Work `json:"works"`
}
