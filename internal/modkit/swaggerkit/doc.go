package swaggerkit

// doc describes the ops API. Shared error responses and the ErrorResponse schema are
// added at serve time
const doc = `{
  "openapi": "3.0.3",
  "info": {
    "title": "langid ops API",
    "description": "Health, readiness and a JSON view of the TCP classify protocol",
    "version": "dev"
  },
  "tags": [
    {"name": "meta", "description": "process health and identity"},
    {"name": "classify", "description": "language identification"}
  ],
  "paths": {
    "/meta/health": {
      "get": {
        "tags": ["meta"],
        "summary": "Liveness",
        "operationId": "metaHealth",
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/HealthEnvelope"}}}}
        }
      }
    },
    "/meta/ready": {
      "get": {
        "tags": ["meta"],
        "summary": "Readiness of the backends and the TCP listener",
        "operationId": "metaReady",
        "responses": {
          "200": {"description": "all checks pass", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ReadyEnvelope"}}}},
          "503": {"description": "at least one check failed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ReadyEnvelope"}}}}
        }
      }
    },
    "/meta/version": {
      "get": {
        "tags": ["meta"],
        "summary": "Build information",
        "operationId": "metaVersion",
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/VersionEnvelope"}}}}
        }
      }
    },
    "/meta/service": {
      "get": {
        "tags": ["meta"],
        "summary": "Service name and uptime",
        "operationId": "metaService",
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ServiceEnvelope"}}}}
        }
      }
    },
    "/api/v1/classify": {
      "post": {
        "tags": ["classify"],
        "summary": "Classify a text with the primary or alternate backend",
        "operationId": "classify",
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ClassifyRequest"}}}
        },
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ClassifyEnvelope"}}}},
          "502": {"description": "the backend failed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "503": {"description": "the backend is not loaded", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "HealthResponse": {
        "type": "object",
        "properties": {
          "ok": {"type": "boolean"},
          "service": {"type": "string"},
          "started": {"type": "string", "format": "date-time"},
          "now": {"type": "string", "format": "date-time"}
        }
      },
      "ReadyCheck": {
        "type": "object",
        "properties": {
          "name": {"type": "string", "example": "backends"},
          "status": {"type": "string", "enum": ["ok", "fail"]},
          "error": {"type": "string"}
        }
      },
      "ReadyResponse": {
        "type": "object",
        "properties": {
          "status": {"type": "string", "enum": ["ok", "fail"]},
          "checks": {"type": "array", "items": {"$ref": "#/components/schemas/ReadyCheck"}},
          "now": {"type": "string", "format": "date-time"}
        }
      },
      "VersionInfo": {
        "type": "object",
        "properties": {
          "service": {"type": "string"},
          "version": {"type": "string"},
          "commit": {"type": "string"},
          "date": {"type": "string"},
          "go_version": {"type": "string"}
        }
      },
      "ServiceResponse": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "started": {"type": "string", "format": "date-time"},
          "uptime": {"type": "integer", "format": "int64", "description": "seconds"}
        }
      },
      "ClassifyRequest": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": {"type": "string", "maxLength": 1048576, "example": "This is my sample text"},
          "classifier": {"type": "string", "maxLength": 64, "description": "alt selects the alternate backend"},
          "hint": {"type": "string", "maxLength": 35, "description": "BCP 47 tag; only the alternate backend uses it", "example": "de"}
        }
      },
      "Candidate": {
        "type": "object",
        "properties": {
          "name": {"type": "string", "example": "ENGLISH"},
          "code": {"type": "string", "example": "en"},
          "percent": {"type": "integer", "minimum": 0, "maximum": 100},
          "score": {"type": "number", "format": "double"}
        }
      },
      "ClassifyResponse": {
        "type": "object",
        "properties": {
          "code": {"type": "string", "example": "en"},
          "reliable": {"type": "boolean"},
          "text_bytes": {"type": "integer"},
          "script": {"type": "string"},
          "backend": {"type": "string", "example": "whatlang"},
          "candidates": {"type": "array", "items": {"$ref": "#/components/schemas/Candidate"}},
          "rendered": {"type": "string", "example": "('en', True, (('ENGLISH', 'en', 100, 0.9000),))"}
        }
      },
      "HealthEnvelope": {"allOf": [{"$ref": "#/components/schemas/Envelope"}, {"type": "object", "properties": {"data": {"$ref": "#/components/schemas/HealthResponse"}}}]},
      "ReadyEnvelope": {"allOf": [{"$ref": "#/components/schemas/Envelope"}, {"type": "object", "properties": {"data": {"$ref": "#/components/schemas/ReadyResponse"}}}]},
      "VersionEnvelope": {"allOf": [{"$ref": "#/components/schemas/Envelope"}, {"type": "object", "properties": {"data": {"$ref": "#/components/schemas/VersionInfo"}}}]},
      "ServiceEnvelope": {"allOf": [{"$ref": "#/components/schemas/Envelope"}, {"type": "object", "properties": {"data": {"$ref": "#/components/schemas/ServiceResponse"}}}]},
      "ClassifyEnvelope": {"allOf": [{"$ref": "#/components/schemas/Envelope"}, {"type": "object", "properties": {"data": {"$ref": "#/components/schemas/ClassifyResponse"}}}]},
      "Envelope": {
        "type": "object",
        "properties": {
          "status_code": {"type": "integer", "format": "int32", "example": 200},
          "status": {"type": "string", "example": "OK"},
          "request_id": {"type": "string"}
        }
      }
    }
  }
}`
