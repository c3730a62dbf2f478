package dtos

// JobSearchRequest is bound from the GET /jobs query string.
type JobSearchRequest struct {
	Role   string `form:"role" binding:"required,min=2"` // e.g. "Java Developer"
	City   string `form:"city"`                          // e.g. "Pune"
	ExpMin *int   `form:"exp_min"`                       // min years experience
	ExpMax *int   `form:"exp_max"`                       // max years experience
	Page   int    `form:"page,default=1" binding:"min=1"`
	Size   int    `form:"size,default=20" binding:"min=1,max=50"`
}
