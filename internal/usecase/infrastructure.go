package usecase

import "context"

type AdvisorInfra interface {
	Advise(ctx context.Context, req *AdviseReq) (*AdviseRes, error)
}

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
	CleanupImage(key string)
	WaitForCleanup(ctx context.Context) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
