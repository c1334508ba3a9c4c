package code

import "net/http"

var (
	Success = NewSuss(1, http.StatusOK, lang{en: "Success", pt_br: "Sucesso"})
	Created = NewSuss(2, http.StatusCreated, lang{en: "Created", pt_br: "Criado"})

	ErrorNoContent       = NewError(401, http.StatusNoContent, lang{en: "No content", pt_br: "Sem conteúdo"})
	ErrorInvalidParams   = NewError(402, http.StatusBadRequest, lang{en: "Invalid parameters", pt_br: "Parâmetros inválidos"})
	ErrorNotFound        = NewError(404, http.StatusNotFound, lang{en: "Resource not found", pt_br: "Recurso não encontrado"})
	ErrorNotFoundAPI     = NewError(405, http.StatusNotFound, lang{en: "API not found", pt_br: "Rota não encontrada"})
	ErrorTooManyRequests = NewError(429, http.StatusTooManyRequests, lang{en: "Too many requests", pt_br: "Muitas requisições"})
	ErrorServerInternal  = NewError(500, http.StatusInternalServerError, lang{en: "Internal server error", pt_br: "Erro interno do servidor"})
	ErrorDBQuery         = NewError(501, http.StatusInternalServerError, lang{en: "Database query failed", pt_br: "Erro ao consultar o banco de dados"})
	ErrorDBCreate        = NewError(502, http.StatusInternalServerError, lang{en: "Failed to create record", pt_br: "Erro ao criar registro"})
	ErrorDBUpdate        = NewError(503, http.StatusInternalServerError, lang{en: "Failed to update record", pt_br: "Erro ao atualizar registro"})
	ErrorMailSend        = NewError(510, http.StatusInternalServerError, lang{en: "Failed to send email", pt_br: "Erro ao enviar e-mail"})

	ErrorServiceUnavailable = NewError(520, http.StatusServiceUnavailable, lang{en: "Service unavailable", pt_br: "Serviço indisponível"})
	ErrorRequestTimeout     = NewError(521, http.StatusGatewayTimeout, lang{en: "Request timed out", pt_br: "Tempo da requisição esgotado"})

	// Lead 相关
	ErrorLeadFieldsRequired     = NewError(1001, http.StatusBadRequest, lang{en: "Name and email are required", pt_br: "Preencha todos os campos"})
	ErrorLeadNameLength         = NewError(1002, http.StatusBadRequest, lang{en: "Name must be between 3 and 100 characters", pt_br: "O nome deve ter entre 3 e 100 caracteres"})
	ErrorLeadEmailLength        = NewError(1003, http.StatusBadRequest, lang{en: "Email must be between %d and %d characters", pt_br: "O email deve ter entre %d e %d caracteres"})
	ErrorLeadEmailInvalid       = NewError(1004, http.StatusBadRequest, lang{en: "Invalid email", pt_br: "Email inválido"})
	ErrorLeadEmailAlreadyExists = NewError(1005, http.StatusBadRequest, lang{en: "Email already registered", pt_br: "Email já cadastrado"})
	ErrorLeadIDRequired         = NewError(1006, http.StatusBadRequest, lang{en: "lead_id is required", pt_br: "lead_id é obrigatório"})
	ErrorLeadNotFound           = NewError(1007, http.StatusNotFound, lang{en: "Lead does not exist", pt_br: "Lead não existe!"})
	ErrorLeadInactive           = NewError(1008, http.StatusBadRequest, lang{en: "Lead is inactive", pt_br: "Lead está inativo"})

	// Intention 相关
	ErrorIntentionZipcodeRequired = NewError(2001, http.StatusBadRequest, lang{en: "zipcode_start and zipcode_end are required", pt_br: "Informe o CEP de origem e de destino"})
	ErrorIntentionIDRequired      = NewError(2002, http.StatusBadRequest, lang{en: "intention_id is required", pt_br: "intention_id é obrigatório"})
	ErrorIntentionNotFound        = NewError(2003, http.StatusNotFound, lang{en: "Intention does not exist", pt_br: "Intention não existe!"})
	ErrorIntentionAlreadyLinked   = NewError(2004, http.StatusBadRequest, lang{en: "Intention already has a linked lead", pt_br: "Intenção já possui um lead vinculado"})

	// Zipcode 相关
	ErrorZipcodeInvalid  = NewError(3001, http.StatusBadRequest, lang{en: "Invalid zip code", pt_br: "CEP inválido"})
	ErrorZipcodeNotFound = NewError(3002, http.StatusNotFound, lang{en: "Zip code not found: %s", pt_br: "CEP não encontrado: %s!"})
)
