// Package rates reads currency conversion factors out of JSON documents.
//
// Exchange rate providers publish JSON with very different shapes, so the
// factor is located with a JSONPath expression, for instance
// "$.rates.EUR" or "$.series.intraday.data[-1:][1]".
package rates

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/bank"
)

// FromJSON decodes a JSON document from r and returns the number at path.
func FromJSON(r io.Reader, path string) (float64, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return math.NaN(), fmt.Errorf("error decoding json: %w", err)
	}
	return lookup(jobj, path)
}

// lookup evaluates path against a decoded JSON value.
func lookup(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %w", path, err)
	}
	// jsonpath returns either a single value or a list of matches depending
	// on the expression: keep the first one if any.
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return math.NaN(), fmt.Errorf("no value at %q", path)
		}
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		// some providers quote numbers, sometimes with a decimal comma.
		s := strings.ReplaceAll(v, ",", ".")
		s = strings.ReplaceAll(s, " ", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("value at %q is an invalid string %q: %w", path, v, err)
		}
		return f, nil
	default:
		return math.NaN(), fmt.Errorf("value at %q is not a number: %v", path, jval)
	}
}

// Fetch reads the JSON document at src and returns the number at path.
//
// src is either an http(s) URL or a local file name.
func Fetch(ctx context.Context, client *http.Client, src, path string) (float64, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		f, err := os.Open(src)
		if err != nil {
			return math.NaN(), err
		}
		defer f.Close()
		return FromJSON(f, path)
	}

	var jobj any
	if err := jwget(ctx, client, src, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", src, err)
	}
	return lookup(jobj, path)
}

// Rate builds a currency rate for code whose factor is read from src at path.
//
// The value read is base units per unit of code. When invert is true it is
// read as units of code per base unit instead, and inverted.
func Rate(ctx context.Context, client *http.Client, code, src, path string, invert bool) (bank.CurrencyRate, error) {
	v, err := Fetch(ctx, client, src, path)
	if err != nil {
		return bank.CurrencyRate{}, fmt.Errorf("could not read %s rate: %w", code, err)
	}
	if invert && v != 0 {
		v = 1 / v
	}
	log.Printf("%s rate read from %s at %s: %v", code, src, path, v)
	return bank.NewCurrencyRate(code, v)
}

// jwget performs an HTTP GET request and unmarshals the JSON response into data.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	log.Printf("%v %v/%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
