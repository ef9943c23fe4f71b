package handler

import (
	"encoding/hex"
	"io"
	"net/http"
	"strings"

	"knowmap-backend/domain/extract"
	"knowmap-backend/domain/refdata"
	"knowmap-backend/logging"
	"knowmap-backend/repository/filesave"
	"knowmap-backend/repository/metadata"
	"knowmap-backend/repository/neograph"
	"knowmap-backend/server/common"
	"knowmap-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UploadFile(ctx *gin.Context) {
	handler := uploadFileHandler{
		ctx: ctx,
	}

	if err := handler.checkParam(); err != nil {
		logging.NewLogger().WithError(err).Errorf("parse req error: %s", err.Error())
		ctx.JSON(http.StatusBadRequest, common.MakeUnknownErrorResp())
		return
	}

	resp, err := handler.produce()
	if err != nil {
		logging.NewLogger().WithError(err).Errorf("produce error: %s", err.Error())
		ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(resp))
}

type uploadFileHandler struct {
	ctx *gin.Context

	// params
	fileName string
	fileData []byte
}

type uploadFileRespSchema struct {
	FileID  uint             `json:"file_id"`
	Stored  int              `json:"stored"`
	Triples []extract.Triple `json:"triples"`
}

func (h *uploadFileHandler) checkParam() error {
	contentType := h.ctx.GetHeader("Content-Type")
	if !strings.Contains(contentType, "multipart/form-data") {
		return utils.WrapErrorf(common.ErrContentTypeNotMultipartFormData,
			"actual Content-Type = [%s] not 'multipart/form-data'", contentType)
	}

	multipart, err := h.ctx.MultipartForm()
	if err != nil {
		return utils.WrapErrorf(err, "read multipart header fail")
	}

	fileHeaders := multipart.File["file"]

	for _, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			return utils.WrapError(err, "open multipart file fail")
		}

		data, err := io.ReadAll(file)
		if err != nil {
			return utils.WrapError(err, "read multipart file fail")
		}

		h.fileName = header.Filename
		h.fileData = data
	}

	if len(h.fileData) == 0 {
		return utils.WrapError(common.ErrRequestParamEmpty, "no file in multipart form")
	}

	return nil
}

func (h *uploadFileHandler) produce() (*uploadFileRespSchema, error) {
	fileInfo, err := h.saveFile()
	if err != nil {
		return nil, utils.WrapError(err, "call saveFile fail")
	}

	fileID, err := h.saveMetadata(fileInfo)
	if err != nil {
		return nil, utils.WrapError(err, "call saveMetadata fail")
	}

	triples, stored, err := h.extractAndStore(fileID)
	if err != nil {
		return nil, utils.WrapError(err, "call extractAndStore fail")
	}

	return &uploadFileRespSchema{
		FileID:  fileID,
		Stored:  stored,
		Triples: triples,
	}, nil
}

func (h *uploadFileHandler) saveFile() (filesave.SaveFileResp, error) {
	resp, err := filesave.SaveFile(h.fileData, h.fileName)
	if err != nil {
		return filesave.SaveFileResp{}, utils.WrapError(err, "save multipart file fail")
	}

	return resp, nil
}

func (h *uploadFileHandler) saveMetadata(fileInfo filesave.SaveFileResp) (uint, error) {
	hashBytes, err := hex.DecodeString(fileInfo.Hash)
	if err != nil {
		return 0, utils.WrapError(err, "decode hash fail")
	}

	file := metadata.File{
		Model: gorm.Model{},
		Extra: metadata.Extra{},
		Type:  fileInfo.Type,
		URL:   fileInfo.URL,
		Name:  h.removeSuffix(h.fileName),
		Hash:  hashBytes,
	}
	err = metadata.DatabaseRaw().Create(&file).Error

	if err != nil {
		return 0, utils.WrapError(err, "save file metadata fail")
	}

	return file.ID, nil
}

func (h *uploadFileHandler) extractAndStore(fileID uint) ([]extract.Triple, int, error) {
	triples, err := extract.FromFile(h.ctx.Request.Context(), h.fileData, h.fileName)
	if err != nil {
		return nil, 0, utils.WrapError(err, "extract from file fail")
	}

	text := metadata.Text{
		Content: string(h.fileData),
		FileID:  utils.UintToPtr(fileID),
	}
	if err := metadata.DatabaseRaw().Create(&text).Error; err != nil {
		return nil, 0, utils.WrapError(err, "save text metadata fail")
	}

	records := make([]metadata.TripleRecord, 0, len(triples))
	for _, triple := range triples {
		records = append(records, metadata.TripleRecord{
			Subject:  triple.Subject,
			Relation: triple.Relation,
			Object:   triple.Object,
			TextID:   utils.UintToPtr(text.ID),
		})
	}

	if len(records) > 0 {
		if err := metadata.DatabaseRaw().CreateInBatches(&records, 128).Error; err != nil {
			return nil, 0, utils.WrapError(err, "save triple records fail")
		}
	}

	stored, err := neograph.StoreTriples(triples, refdata.Get())
	if err != nil {
		return nil, 0, utils.WrapError(err, "store triples to graph fail")
	}

	return triples, stored, nil
}

func (h *uploadFileHandler) removeSuffix(origin string) string {
	index := strings.LastIndexByte(origin, '.')
	if index < 0 || len(origin)-index > 5 {
		return origin
	}

	return origin[:index]
}
