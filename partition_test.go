package mapreduce

import "testing"

func TestDefaultPartitionInRange(t *testing.T) {
	for _, n := range []int{1, 2, 7, 16} {
		for _, k := range []string{"", "a", "wordcount", "the quick brown fox"} {
			p := DefaultPartition(k, n)
			if p < 0 || p >= n {
				t.Fatalf("DefaultPartition(%q, %d) = %d, out of range", k, n, p)
			}
		}
	}
}

func TestDefaultPartitionEmptyKey(t *testing.T) {
	// djb2 of the empty string is the seed itself, 5381.
	if got, want := DefaultPartition("", 10007), 5381%10007; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMurmurPartitionInRange(t *testing.T) {
	for _, n := range []int{1, 2, 7, 16} {
		for _, k := range []string{"", "a", "wordcount", "the quick brown fox"} {
			p := MurmurPartition(k, n)
			if p < 0 || p >= n {
				t.Fatalf("MurmurPartition(%q, %d) = %d, out of range", k, n, p)
			}
		}
	}
}

func TestMurmurPartitionDeterministic(t *testing.T) {
	first := MurmurPartition("stable-key", 32)
	for i := 0; i < 50; i++ {
		if got := MurmurPartition("stable-key", 32); got != first {
			t.Fatalf("call %d: got %v, want %v", i, got, first)
		}
	}
}
