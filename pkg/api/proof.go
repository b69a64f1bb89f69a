package api

// Proof is the public certificate of a registered work.
type Proof struct {
	PublicId         string  `json:"publicId"`
	Title            string  `json:"title"`
	ProjectType      string  `json:"projectType"`
	FileHash         string  `json:"fileHash"`
	OwnerDisplayName string  `json:"ownerDisplayName"`
	Rights           *Rights `json:"rights,omitempty"`
	RightsDigest     string  `json:"rightsDigest,omitempty"`
	AnchorStatus     string  `json:"anchorStatus"`
	AnchorTxHash     string  `json:"anchorTxHash,omitempty"`
	CreatedAt        int64   `json:"createdAt"`
}

type GetProofRequest struct {
	PublicId string `json:"publicId"`
}

type GetProofResponse struct {
	Proof *Proof `json:"proof"`
}

type VerifyHashRequest struct {
	FileHash string `json:"fileHash"`
}

type VerifyHashResponse struct {
	Found bool   `json:"found"`
	Proof *Proof `json:"proof,omitempty"`
}
